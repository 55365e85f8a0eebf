package leavetype

import (
	"time"

	leavetypeDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/leavetype"
)

// Canonical leave type names. The label carried alongside each name is the
// Arabic display string the UI renders.
const (
	TypeAnnual    = "ANNUAL"
	TypeSick      = "SICK"
	TypeEmergency = "EMERGENCY"
	TypeUnpaid    = "UNPAID"
)

type LeaveType struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *LeaveType) IsActiveType() bool {
	return t.IsActive
}

func (t *LeaveType) ToResponse() LeaveTypeResponse {
	return LeaveTypeResponse{
		Name:  t.Name,
		Label: t.Label,
	}
}

func (t *LeaveType) Activate() {
	t.IsActive = true
	t.UpdatedAt = time.Now()
}

func (t *LeaveType) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
}

func NewLeaveType(name, label string) *LeaveType {
	now := time.Now()
	return &LeaveType{
		Name:      name,
		Label:     label,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ToDataModel(t *LeaveType) *leavetypeDatamodel.LeaveType {
	return &leavetypeDatamodel.LeaveType{
		ID:        t.ID,
		Name:      t.Name,
		Label:     t.Label,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromDataModel(t *leavetypeDatamodel.LeaveType) *LeaveType {
	return &LeaveType{
		ID:        t.ID,
		Name:      t.Name,
		Label:     t.Label,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
