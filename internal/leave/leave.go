package leave

import (
	"time"

	leaveDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/leave"
)

type LeaveRequest struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	UserName    string     `json:"user_name"`
	LeaveType   string     `json:"leave_type"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// ManualRegistrationReason is the fixed administrative note attached to
// leaves an admin records on an employee's behalf.
const ManualRegistrationReason = "تم تسجيلها بواسطة الإدارة"

func (l *LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

func (l *LeaveRequest) CanBeApproved() bool {
	return l.Status == StatusPending
}

func (l *LeaveRequest) CanBeRejected() bool {
	return l.Status == StatusPending
}

func (l *LeaveRequest) Approve() {
	l.Status = StatusApproved
	now := time.Now()
	l.ProcessedAt = &now
	l.UpdatedAt = now
}

func (l *LeaveRequest) Reject() {
	l.Status = StatusRejected
	now := time.Now()
	l.ProcessedAt = &now
	l.UpdatedAt = now
}

// Days counts the calendar days of the span, both endpoints inclusive.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

func ToDataModel(l *LeaveRequest) *leaveDatamodel.LeaveRequest {
	return &leaveDatamodel.LeaveRequest{
		ID:          l.ID,
		UserID:      l.UserID,
		UserName:    l.UserName,
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate,
		EndDate:     l.EndDate,
		Reason:      l.Reason,
		Status:      l.Status,
		ProcessedAt: l.ProcessedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromDataModel(l *leaveDatamodel.LeaveRequest) *LeaveRequest {
	return &LeaveRequest{
		ID:          l.ID,
		UserID:      l.UserID,
		UserName:    l.UserName,
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate,
		EndDate:     l.EndDate,
		Reason:      l.Reason,
		Status:      l.Status,
		ProcessedAt: l.ProcessedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromDataModelSlice(leaves []*leaveDatamodel.LeaveRequest) []*LeaveRequest {
	result := make([]*LeaveRequest, len(leaves))
	for i, l := range leaves {
		result[i] = FromDataModel(l)
	}
	return result
}
