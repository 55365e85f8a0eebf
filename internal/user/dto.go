package user

import (
	"time"

	"github.com/frahmantamala/leave-management/internal/core/common/validation"
)

// CreateUserDTO is the admin "add employee" payload. JoinDate is a plain
// calendar date, no time component.
type CreateUserDTO struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Department string `json:"department,omitempty"`
	JobTitle   string `json:"job_title,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	JoinDate   string `json:"join_date,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
}

func (dto CreateUserDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(200)
	v.Field("password", dto.Password).Required().MinLength(3)
	if err := v.Validate(); err != nil {
		return err
	}
	if err := validation.ValidateUsername(dto.Username); err != nil {
		return err
	}
	if dto.JoinDate != "" {
		if _, err := time.Parse("2006-01-02", dto.JoinDate); err != nil {
			return err
		}
	}
	return nil
}

// ParsedJoinDate returns the join date or nil when absent. Validate must
// have accepted the DTO first.
func (dto CreateUserDTO) ParsedJoinDate() *time.Time {
	if dto.JoinDate == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", dto.JoinDate)
	if err != nil {
		return nil
	}
	return &t
}

// DirectoryEntry is the sanitized colleague view: no balance, no contact
// details beyond what the original directory card showed.
type DirectoryEntry struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	JobTitle   string `json:"job_title,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
}

func (u *User) ToDirectoryEntry() DirectoryEntry {
	return DirectoryEntry{
		ID:         u.ID,
		Name:       u.Name,
		Department: u.Department,
		JobTitle:   u.JobTitle,
		ImageURL:   u.ImageURL,
	}
}
