package postgres

import (
	leavetypeDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/leavetype"
	"github.com/frahmantamala/leave-management/internal/leavetype"
	"gorm.io/gorm"
)

type LeaveTypeRepository struct {
	db *gorm.DB
}

func NewLeaveTypeRepository(db *gorm.DB) leavetype.RepositoryAPI {
	return &LeaveTypeRepository{db: db}
}

func (r *LeaveTypeRepository) GetAll() ([]*leavetypeDatamodel.LeaveType, error) {
	var leaveTypes []*leavetypeDatamodel.LeaveType
	err := r.db.Order("id ASC").Find(&leaveTypes).Error
	return leaveTypes, err
}

func (r *LeaveTypeRepository) GetByName(name string) (*leavetypeDatamodel.LeaveType, error) {
	var lt leavetypeDatamodel.LeaveType
	err := r.db.Where("name = ?", name).First(&lt).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &lt, nil
}

func (r *LeaveTypeRepository) Create(lt *leavetypeDatamodel.LeaveType) error {
	return r.db.Create(lt).Error
}

func (r *LeaveTypeRepository) Update(lt *leavetypeDatamodel.LeaveType) error {
	return r.db.Save(lt).Error
}

func (r *LeaveTypeRepository) Delete(id int64) error {
	return r.db.Model(&leavetypeDatamodel.LeaveType{}).Where("id = ?", id).Update("is_active", false).Error
}
