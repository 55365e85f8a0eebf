package leave

import "time"

type LeaveRequest struct {
	ID          int64      `gorm:"primaryKey"`
	UserID      int64      `gorm:"column:user_id;not null;index"`
	UserName    string     `gorm:"column:user_name;not null"`
	LeaveType   string     `gorm:"column:leave_type;not null"`
	StartDate   time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time  `gorm:"column:end_date;type:date;not null"`
	Reason      string     `gorm:"column:reason"`
	Status      string     `gorm:"column:status;not null;default:PENDING"`
	ProcessedAt *time.Time `gorm:"column:processed_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;index"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
