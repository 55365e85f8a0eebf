package leavetype

import (
	"log/slog"

	leavetypeDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/leavetype"
)

type RepositoryAPI interface {
	GetAll() ([]*leavetypeDatamodel.LeaveType, error)
	GetByName(name string) (*leavetypeDatamodel.LeaveType, error)
	Create(leaveType *leavetypeDatamodel.LeaveType) error
	Update(leaveType *leavetypeDatamodel.LeaveType) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAllTypes returns the active leave types in catalog order.
func (s *Service) GetAllTypes() ([]LeaveTypeResponse, error) {
	dataTypes, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get leave types from repository", "error", err)
		return nil, err
	}

	var responses []LeaveTypeResponse
	for _, dataType := range dataTypes {
		domainType := FromDataModel(dataType)
		if domainType.IsActiveType() {
			responses = append(responses, domainType.ToResponse())
		}
	}

	s.logger.Info("retrieved leave types", "count", len(responses))
	return responses, nil
}

func (s *Service) GetTypeByName(name string) (*LeaveTypeResponse, error) {
	dataType, err := s.repo.GetByName(name)
	if err != nil {
		s.logger.Error("failed to get leave type from repository", "name", name, "error", err)
		return nil, err
	}
	if dataType == nil {
		return nil, nil
	}

	domainType := FromDataModel(dataType)
	if !domainType.IsActiveType() {
		return nil, nil
	}

	response := domainType.ToResponse()
	return &response, nil
}

// IsValidType reports whether name matches an active catalog entry. Unknown
// or deactivated names are rejected so stale clients cannot submit them.
func (s *Service) IsValidType(name string) bool {
	leaveType, err := s.GetTypeByName(name)
	if err != nil {
		s.logger.Warn("error checking leave type validity", "name", name, "error", err)
		return false
	}
	return leaveType != nil
}
