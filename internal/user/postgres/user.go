package postgres

import (
	userDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/user"
	"github.com/frahmantamala/leave-management/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements user.RepositoryAPI using GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *userDatamodel.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	var record userDatamodel.User
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *UserRepository) GetByUsername(username string) (*userDatamodel.User, error) {
	var record userDatamodel.User
	err := r.db.Where("username = ?", username).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Search filters by role and an optional free-text query over name,
// username and department.
func (r *UserRepository) Search(role, query string) ([]*userDatamodel.User, error) {
	var records []*userDatamodel.User

	tx := r.db.Where("role = ?", role)
	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("name LIKE ? OR username LIKE ? OR department LIKE ?", pattern, pattern, pattern)
	}

	err := tx.Order("created_at ASC").Find(&records).Error
	return records, err
}
