package user

import (
	"errors"
	"time"

	userDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/user"
	coreuser "github.com/frahmantamala/leave-management/internal/core/user"
)

// DefaultLeaveBalance is granted to every employee created through the
// admin workflow.
const DefaultLeaveBalance = 30

type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Department   string     `json:"department,omitempty"`
	JobTitle     string     `json:"job_title,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	JoinDate     *time.Time `json:"join_date,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	Balance      int        `json:"balance"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == coreuser.RoleAdmin
}

func (u *User) IsEmployee() bool {
	return u.Role == coreuser.RoleEmployee
}

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Department:   u.Department,
		JobTitle:     u.JobTitle,
		Email:        u.Email,
		Phone:        u.Phone,
		JoinDate:     u.JoinDate,
		ImageURL:     u.ImageURL,
		Balance:      u.Balance,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Department:   u.Department,
		JobTitle:     u.JobTitle,
		Email:        u.Email,
		Phone:        u.Phone,
		JoinDate:     u.JoinDate,
		ImageURL:     u.ImageURL,
		Balance:      u.Balance,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModelSlice(users []*userDatamodel.User) []*User {
	result := make([]*User, len(users))
	for i, u := range users {
		result[i] = FromDataModel(u)
	}
	return result
}
