package postgres

import (
	"time"

	leaveDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/leave"
	"github.com/frahmantamala/leave-management/internal/leave"
	"gorm.io/gorm"
)

// LeaveRepository implements the leave.Repository interface using GORM.
type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.Repository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(l *leave.LeaveRequest) error {
	record := leave.ToDataModel(l)
	if err := r.db.Create(record).Error; err != nil {
		return err
	}
	l.ID = record.ID
	return nil
}

func (r *LeaveRepository) GetByID(id int64) (*leave.LeaveRequest, error) {
	var record leaveDatamodel.LeaveRequest
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, err
	}
	return leave.FromDataModel(&record), nil
}

// GetByUserID returns one user's requests newest-first, optionally narrowed
// by status.
func (r *LeaveRepository) GetByUserID(userID int64, status string) ([]*leave.LeaveRequest, error) {
	var records []*leaveDatamodel.LeaveRequest
	tx := r.db.Where("user_id = ?", userID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err := tx.Order("created_at DESC, id DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return leave.FromDataModelSlice(records), nil
}

// GetAll returns the whole ledger newest-first. The most recent submission
// is always first, matching the ledger's insertion order.
func (r *LeaveRepository) GetAll(status string) ([]*leave.LeaveRequest, error) {
	var records []*leaveDatamodel.LeaveRequest
	tx := r.db.Session(&gorm.Session{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err := tx.Order("created_at DESC, id DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return leave.FromDataModelSlice(records), nil
}

// UpdateStatus overwrites only the status and processing timestamps of the
// matching record; every other field is left untouched.
func (r *LeaveRepository) UpdateStatus(id int64, status string, processedAt time.Time) error {
	return r.db.Model(&leaveDatamodel.LeaveRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"processed_at": processedAt,
			"updated_at":   time.Now(),
		}).Error
}
