package auth

import (
	"database/sql"
	"fmt"

	coreuser "github.com/frahmantamala/leave-management/internal/core/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// GetCredentials looks up the stored hash for a username. Inactive accounts
// are excluded so disabling a user also revokes their login.
func (r *Repository) GetCredentials(username string) (string, int64, error) {
	var passwordHash string
	var userID int64
	query := `SELECT id, password_hash FROM users WHERE username = ? AND is_active = true`

	row := r.db.Raw(query, username).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if err == sql.ErrNoRows {
			return "", 0, fmt.Errorf("user not found")
		}
		return "", 0, err
	}
	return passwordHash, userID, nil
}

func (r *Repository) GetUserByID(userID int64) (*coreuser.User, error) {
	var user coreuser.User

	query := `SELECT id, username, name, role, balance, is_active, created_at, updated_at
	          FROM users WHERE id = ? AND is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.Role,
		&user.Balance, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	return &user, nil
}
