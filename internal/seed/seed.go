package seed

import (
	"fmt"
	"log/slog"
	"time"

	leaveDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/leave"
	leavetypeDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/leavetype"
	userDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/user"
	coreuser "github.com/frahmantamala/leave-management/internal/core/user"
	"github.com/frahmantamala/leave-management/internal/leave"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder installs the demo dataset: an admin, one employee, the leave type
// catalog and a single historical approved sick leave. Every section is
// guarded by an emptiness check, so running it against an already seeded
// database changes nothing.
type Seeder struct {
	db         *gorm.DB
	bcryptCost int
	logger     *slog.Logger
}

func NewSeeder(db *gorm.DB, bcryptCost int, logger *slog.Logger) *Seeder {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Seeder{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Seeder) Run() error {
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := s.seedLeaveTypes(); err != nil {
		return fmt.Errorf("seed leave types: %w", err)
	}
	if err := s.seedLeaves(); err != nil {
		return fmt.Errorf("seed leaves: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	var count int64
	if err := s.db.Model(&userDatamodel.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("users already present, skipping user seed", "count", count)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123"), s.bcryptCost)
	if err != nil {
		return err
	}

	adminJoin := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	employeeJoin := time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)

	users := []*userDatamodel.User{
		{
			ID:           1,
			Name:         "المدير العام",
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         coreuser.RoleAdmin,
			JobTitle:     "مدير النظام",
			Email:        "admin@company.com",
			JoinDate:     &adminJoin,
			Balance:      30,
			IsActive:     true,
		},
		{
			ID:           2,
			Name:         "أحمد محمد",
			Username:     "ahmed",
			PasswordHash: string(hash),
			Role:         coreuser.RoleEmployee,
			Department:   "تقنية المعلومات",
			JobTitle:     "مطور برمجيات",
			Email:        "ahmed@company.com",
			Phone:        "0501234567",
			JoinDate:     &employeeJoin,
			Balance:      21,
			IsActive:     true,
		},
	}

	for _, u := range users {
		if err := s.db.Create(u).Error; err != nil {
			return err
		}
		s.logger.Info("seeded user", "id", u.ID, "username", u.Username, "role", u.Role)
	}
	return nil
}

func (s *Seeder) seedLeaveTypes() error {
	var count int64
	if err := s.db.Model(&leavetypeDatamodel.LeaveType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("leave types already present, skipping catalog seed", "count", count)
		return nil
	}

	leaveTypes := []*leavetypeDatamodel.LeaveType{
		{Name: "ANNUAL", Label: "سنوية", IsActive: true},
		{Name: "SICK", Label: "مرضية", IsActive: true},
		{Name: "EMERGENCY", Label: "طارئة", IsActive: true},
		{Name: "UNPAID", Label: "بدون راتب", IsActive: true},
	}

	for _, lt := range leaveTypes {
		if err := s.db.Create(lt).Error; err != nil {
			return err
		}
		s.logger.Info("seeded leave type", "name", lt.Name)
	}
	return nil
}

func (s *Seeder) seedLeaves() error {
	var count int64
	if err := s.db.Model(&leaveDatamodel.LeaveRequest{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("leave requests already present, skipping leave seed", "count", count)
		return nil
	}

	processedAt := time.Date(2023, 10, 30, 0, 0, 0, 0, time.UTC)
	historical := &leaveDatamodel.LeaveRequest{
		ID:          101,
		UserID:      2,
		UserName:    "أحمد محمد",
		LeaveType:   "SICK",
		StartDate:   time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
		Reason:      "زكام شديد",
		Status:      leave.StatusApproved,
		ProcessedAt: &processedAt,
	}

	if err := s.db.Create(historical).Error; err != nil {
		return err
	}
	s.logger.Info("seeded historical leave", "id", historical.ID, "status", historical.Status)
	return nil
}
