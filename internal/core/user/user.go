package user

import "time"

// Role values stored on the users table. The system only distinguishes
// administrators from regular employees.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// User is the authenticated identity carried through request context.
type User struct {
	ID        int64
	Username  string
	Name      string
	Role      string
	Balance   int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

func (u *User) IsActiveUser() bool {
	return u.IsActive
}
