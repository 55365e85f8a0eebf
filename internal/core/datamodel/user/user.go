package user

import "time"

type User struct {
	ID           int64      `gorm:"primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Username     string     `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         string     `gorm:"column:role;not null;default:EMPLOYEE"`
	Department   string     `gorm:"column:department"`
	JobTitle     string     `gorm:"column:job_title"`
	Email        string     `gorm:"column:email"`
	Phone        string     `gorm:"column:phone"`
	JoinDate     *time.Time `gorm:"column:join_date;type:date"`
	ImageURL     string     `gorm:"column:image_url"`
	Balance      int        `gorm:"column:balance;not null;default:30"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
