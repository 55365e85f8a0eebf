package leave

import (
	"errors"
	"time"

	"github.com/frahmantamala/leave-management/internal/core/common/validation"
)

// SubmitLeaveDTO is the employee submission payload. Dates are plain
// calendar dates in ISO form, no time component.
type SubmitLeaveDTO struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// Validate checks the submission boundary invariants: both dates parse and
// the end of the span does not precede its start. Invalid submissions never
// reach the store.
func (dto SubmitLeaveDTO) Validate() error {
	if dto.LeaveType == "" {
		return errors.New("leave_type is required")
	}

	start, err := time.Parse("2006-01-02", dto.StartDate)
	if err != nil {
		return errors.New("start_date must be a valid date (YYYY-MM-DD)")
	}
	end, err := time.Parse("2006-01-02", dto.EndDate)
	if err != nil {
		return errors.New("end_date must be a valid date (YYYY-MM-DD)")
	}

	if rangeErr := validation.ValidateDateRange(start, end); rangeErr != nil {
		return rangeErr
	}
	if reasonErr := validation.ValidateReason(dto.Reason); reasonErr != nil {
		return reasonErr
	}
	return nil
}

func (dto SubmitLeaveDTO) ParsedDates() (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", dto.StartDate)
	end, _ = time.Parse("2006-01-02", dto.EndDate)
	return start, end
}

// ManualLeaveDTO is the admin "record leave for employee" payload. The
// reason is not part of the payload; manual registrations always carry the
// fixed administrative note.
type ManualLeaveDTO struct {
	UserID    int64  `json:"user_id"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (dto ManualLeaveDTO) Validate() error {
	if dto.UserID == 0 {
		return errors.New("user_id is required")
	}
	if dto.LeaveType == "" {
		return errors.New("leave_type is required")
	}

	start, err := time.Parse("2006-01-02", dto.StartDate)
	if err != nil {
		return errors.New("start_date must be a valid date (YYYY-MM-DD)")
	}
	end, err := time.Parse("2006-01-02", dto.EndDate)
	if err != nil {
		return errors.New("end_date must be a valid date (YYYY-MM-DD)")
	}

	if rangeErr := validation.ValidateDateRange(start, end); rangeErr != nil {
		return rangeErr
	}
	return nil
}

func (dto ManualLeaveDTO) ParsedDates() (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", dto.StartDate)
	end, _ = time.Parse("2006-01-02", dto.EndDate)
	return start, end
}

// Domain errors
var (
	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrInvalidLeaveStatus = errors.New("invalid leave status for this operation")
	ErrUnknownLeaveType   = errors.New("unknown leave type")
	ErrUnauthorizedAccess = errors.New("unauthorized access to leave request")
)
