package user

import (
	"log/slog"
	"time"

	userDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/user"
	coreuser "github.com/frahmantamala/leave-management/internal/core/user"
)

type RepositoryAPI interface {
	Create(u *userDatamodel.User) error
	GetByID(id int64) (*userDatamodel.User, error)
	GetByUsername(username string) (*userDatamodel.User, error)
	Search(role, query string) ([]*userDatamodel.User, error)
}

// PasswordHasher lets the user service reuse whatever hashing policy the
// auth service is configured with.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   RepositoryAPI
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// CreateEmployee registers a new employee record. Username uniqueness is
// enforced here: the login lookup takes the first match, so a duplicate
// would shadow an existing account.
func (s *Service) CreateEmployee(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user validation failed", "error", err, "username", dto.Username)
		return nil, err
	}

	if existing, err := s.repo.GetByUsername(dto.Username); err == nil && existing != nil {
		s.logger.Warn("duplicate username rejected", "username", dto.Username)
		return nil, ErrDuplicateUsername
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	now := time.Now()
	record := &userDatamodel.User{
		Name:         dto.Name,
		Username:     dto.Username,
		PasswordHash: hash,
		Role:         coreuser.RoleEmployee,
		Department:   dto.Department,
		JobTitle:     dto.JobTitle,
		Email:        dto.Email,
		Phone:        dto.Phone,
		JoinDate:     dto.ParsedJoinDate(),
		ImageURL:     dto.ImageURL,
		Balance:      DefaultLeaveBalance,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, err
	}

	s.logger.Info("employee created",
		"user_id", record.ID,
		"username", record.Username,
		"balance", record.Balance)

	return FromDataModel(record), nil
}

func (s *Service) GetByID(userID int64) (*User, error) {
	record, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return FromDataModel(record), nil
}

// ListEmployees returns employee records for the admin roster, optionally
// filtered by a free-text query over name, username and department.
func (s *Service) ListEmployees(query string) ([]*User, error) {
	records, err := s.repo.Search(coreuser.RoleEmployee, query)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err, "query", query)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

// Directory returns the colleague view for a signed-in user: all active
// employees except the caller, sanitized.
func (s *Service) Directory(excludeUserID int64) ([]DirectoryEntry, error) {
	records, err := s.repo.Search(coreuser.RoleEmployee, "")
	if err != nil {
		s.logger.Error("failed to load directory", "error", err)
		return nil, err
	}

	entries := make([]DirectoryEntry, 0, len(records))
	for _, record := range records {
		if record.ID == excludeUserID || !record.IsActive {
			continue
		}
		entries = append(entries, FromDataModel(record).ToDirectoryEntry())
	}
	return entries, nil
}
