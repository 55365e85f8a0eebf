package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/leave-management/internal/core/events"
	coreuser "github.com/frahmantamala/leave-management/internal/core/user"
	"github.com/frahmantamala/leave-management/internal/user"
)

// Repository defines the data access methods for leave requests.
type Repository interface {
	Create(leave *LeaveRequest) error
	GetByID(id int64) (*LeaveRequest, error)
	GetByUserID(userID int64, status string) ([]*LeaveRequest, error)
	GetAll(status string) ([]*LeaveRequest, error)
	UpdateStatus(id int64, status string, processedAt time.Time) error
}

// TypeCatalog validates submitted leave types against the catalog.
type TypeCatalog interface {
	IsValidType(name string) bool
}

// UserDirectory resolves the employee a manual registration targets.
type UserDirectory interface {
	GetByID(userID int64) (*user.User, error)
}

// Service handles the leave request workflow: submission, manual
// registration and the pending review state machine.
type Service struct {
	repo   Repository
	types  TypeCatalog
	users  UserDirectory
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, types TypeCatalog, users UserDirectory, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		types:  types,
		users:  users,
		bus:    bus,
		logger: logger,
	}
}

// Submit creates a new pending request on behalf of the signed-in employee.
// The requester's name is denormalized onto the record so later renames do
// not rewrite history.
func (s *Service) Submit(requester *coreuser.User, dto SubmitLeaveDTO) (*LeaveRequest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("leave validation failed", "error", err, "user_id", requester.ID)
		return nil, err
	}

	if !s.types.IsValidType(dto.LeaveType) {
		s.logger.Warn("unknown leave type rejected", "leave_type", dto.LeaveType, "user_id", requester.ID)
		return nil, ErrUnknownLeaveType
	}

	start, end := dto.ParsedDates()
	now := time.Now()

	leave := &LeaveRequest{
		UserID:    requester.ID,
		UserName:  requester.Name,
		LeaveType: dto.LeaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    dto.Reason,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(leave); err != nil {
		s.logger.Error("failed to create leave request", "error", err, "user_id", requester.ID)
		return nil, err
	}

	s.publish(events.NewLeaveSubmittedEvent(leave.ID, leave.UserID, leave.LeaveType))

	s.logger.Info("leave request submitted",
		"leave_id", leave.ID,
		"user_id", requester.ID,
		"leave_type", leave.LeaveType,
		"days", leave.Days())

	return leave, nil
}

// RegisterManual records a leave an admin grants after the fact. The record
// is created already approved and never passes through review.
func (s *Service) RegisterManual(admin *coreuser.User, dto ManualLeaveDTO) (*LeaveRequest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("manual leave validation failed", "error", err, "admin_id", admin.ID)
		return nil, err
	}

	if !s.types.IsValidType(dto.LeaveType) {
		s.logger.Warn("unknown leave type rejected", "leave_type", dto.LeaveType, "admin_id", admin.ID)
		return nil, ErrUnknownLeaveType
	}

	target, err := s.users.GetByID(dto.UserID)
	if err != nil {
		s.logger.Error("manual leave target not found", "error", err, "user_id", dto.UserID)
		return nil, user.ErrNotFound
	}

	start, end := dto.ParsedDates()
	now := time.Now()

	leave := &LeaveRequest{
		UserID:      target.ID,
		UserName:    target.Name,
		LeaveType:   dto.LeaveType,
		StartDate:   start,
		EndDate:     end,
		Reason:      ManualRegistrationReason,
		Status:      StatusApproved,
		ProcessedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(leave); err != nil {
		s.logger.Error("failed to create manual leave", "error", err, "user_id", target.ID)
		return nil, err
	}

	s.publish(events.NewLeaveApprovedEvent(leave.ID, leave.UserID, admin.ID))

	s.logger.Info("leave registered manually",
		"leave_id", leave.ID,
		"user_id", target.ID,
		"admin_id", admin.ID,
		"leave_type", leave.LeaveType)

	return leave, nil
}

// GetByID retrieves a single request; employees may only see their own.
func (s *Service) GetByID(id int64, viewer *coreuser.User) (*LeaveRequest, error) {
	leave, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrLeaveNotFound
	}

	if !viewer.IsAdmin() && leave.UserID != viewer.ID {
		s.logger.Warn("unauthorized access to leave request",
			"leave_id", id,
			"viewer_id", viewer.ID,
			"owner_id", leave.UserID)
		return nil, ErrUnauthorizedAccess
	}

	return leave, nil
}

// List returns requests newest-first. Admins see the whole ledger,
// employees only their own; both may narrow by status.
func (s *Service) List(viewer *coreuser.User, status string, mineOnly bool) ([]*LeaveRequest, error) {
	if !viewer.IsAdmin() || mineOnly {
		return s.repo.GetByUserID(viewer.ID, status)
	}
	return s.repo.GetAll(status)
}

// Approve moves a pending request to APPROVED. Re-approving an already
// approved request is a no-op; a rejected request cannot be revived.
//
// TODO: deduct the approved span from the owner's balance once the
// day-count rule is settled (calendar days vs. working days is undecided).
func (s *Service) Approve(leaveID int64, reviewer *coreuser.User) error {
	leave, err := s.repo.GetByID(leaveID)
	if err != nil {
		s.logger.Error("leave not found for approval", "error", err, "leave_id", leaveID)
		return ErrLeaveNotFound
	}

	if leave.Status == StatusApproved {
		s.logger.Info("leave already approved", "leave_id", leaveID)
		return nil
	}

	if !leave.CanBeApproved() {
		s.logger.Warn("cannot approve leave in current status",
			"leave_id", leaveID,
			"current_status", leave.Status)
		return ErrInvalidLeaveStatus
	}

	processedAt := time.Now()
	if err := s.repo.UpdateStatus(leaveID, StatusApproved, processedAt); err != nil {
		s.logger.Error("failed to update leave status to approved", "error", err, "leave_id", leaveID)
		return err
	}

	s.publish(events.NewLeaveApprovedEvent(leaveID, leave.UserID, reviewer.ID))

	s.logger.Info("leave request approved",
		"leave_id", leaveID,
		"reviewer_id", reviewer.ID,
		"days", leave.Days())

	return nil
}

// Reject moves a pending request to REJECTED, with the same terminal-state
// rules as Approve.
func (s *Service) Reject(leaveID int64, reviewer *coreuser.User) error {
	leave, err := s.repo.GetByID(leaveID)
	if err != nil {
		s.logger.Error("leave not found for rejection", "error", err, "leave_id", leaveID)
		return ErrLeaveNotFound
	}

	if leave.Status == StatusRejected {
		s.logger.Info("leave already rejected", "leave_id", leaveID)
		return nil
	}

	if !leave.CanBeRejected() {
		s.logger.Warn("cannot reject leave in current status",
			"leave_id", leaveID,
			"current_status", leave.Status)
		return ErrInvalidLeaveStatus
	}

	processedAt := time.Now()
	if err := s.repo.UpdateStatus(leaveID, StatusRejected, processedAt); err != nil {
		s.logger.Error("failed to update leave status to rejected", "error", err, "leave_id", leaveID)
		return err
	}

	s.publish(events.NewLeaveRejectedEvent(leaveID, leave.UserID, reviewer.ID))

	s.logger.Info("leave request rejected",
		"leave_id", leaveID,
		"reviewer_id", reviewer.ID)

	return nil
}

func (s *Service) publish(event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Error("failed to publish event", "error", err, "event_type", event.EventType())
	}
}
