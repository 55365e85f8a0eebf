package user_test

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	userDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/user"
	"github.com/frahmantamala/leave-management/internal/user"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

// Mock repository for testing
type mockUserRepository struct {
	users       map[int64]*userDatamodel.User
	byUsername  map[string]*userDatamodel.User
	createError error
	nextID      int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:      make(map[int64]*userDatamodel.User),
		byUsername: make(map[string]*userDatamodel.User),
		nextID:     1,
	}
}

func (m *mockUserRepository) Create(u *userDatamodel.User) error {
	if m.createError != nil {
		return m.createError
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	m.byUsername[u.Username] = u
	return nil
}

func (m *mockUserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	u, exists := m.users[id]
	if !exists {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByUsername(username string) (*userDatamodel.User, error) {
	u, exists := m.byUsername[username]
	if !exists {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepository) Search(role, query string) ([]*userDatamodel.User, error) {
	var result []*userDatamodel.User
	for id := int64(1); id < m.nextID; id++ {
		u, exists := m.users[id]
		if !exists || u.Role != role {
			continue
		}
		if query != "" && !strings.Contains(u.Name, query) && !strings.Contains(u.Username, query) && !strings.Contains(u.Department, query) {
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

// Mock password hasher
type mockHasher struct {
	hashError error
}

func (m *mockHasher) HashPassword(password string) (string, error) {
	if m.hashError != nil {
		return "", m.hashError
	}
	return fmt.Sprintf("hashed:%s", password), nil
}

var _ = Describe("UserService", func() {
	var (
		repo    *mockUserRepository
		hasher  *mockHasher
		service *user.Service
	)

	BeforeEach(func() {
		repo = newMockUserRepository()
		hasher = &mockHasher{}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(repo, hasher, logger)
	})

	Describe("CreateEmployee", func() {
		Context("when the payload is valid", func() {
			It("should create the employee with the default balance and a hashed password", func() {
				created, err := service.CreateEmployee(user.CreateUserDTO{
					Name:       "سارة أحمد",
					Username:   "sara",
					Password:   "secret",
					Department: "الموارد البشرية",
					JoinDate:   "2024-01-15",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).To(BeNumerically(">", 0))
				Expect(created.Balance).To(Equal(user.DefaultLeaveBalance))
				Expect(created.Role).To(Equal("EMPLOYEE"))
				Expect(created.IsActive).To(BeTrue())

				stored, err := repo.GetByID(created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(stored.PasswordHash).To(Equal("hashed:secret"))
				Expect(stored.PasswordHash).NotTo(Equal("secret"))
			})

			It("should make the new employee retrievable by id", func() {
				created, err := service.CreateEmployee(user.CreateUserDTO{
					Name: "سارة أحمد", Username: "sara", Password: "secret",
				})
				Expect(err).NotTo(HaveOccurred())

				found, err := service.GetByID(created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(found.Username).To(Equal("sara"))
			})

			It("should grow the roster by one", func() {
				before, err := service.ListEmployees("")
				Expect(err).NotTo(HaveOccurred())

				_, err = service.CreateEmployee(user.CreateUserDTO{
					Name: "سارة أحمد", Username: "sara", Password: "secret",
				})
				Expect(err).NotTo(HaveOccurred())

				after, err := service.ListEmployees("")
				Expect(err).NotTo(HaveOccurred())
				Expect(after).To(HaveLen(len(before) + 1))
			})
		})

		Context("when the username is already taken", func() {
			It("should return a duplicate username error", func() {
				_, err := service.CreateEmployee(user.CreateUserDTO{
					Name: "سارة أحمد", Username: "sara", Password: "secret",
				})
				Expect(err).NotTo(HaveOccurred())

				_, err = service.CreateEmployee(user.CreateUserDTO{
					Name: "سارة عبدالله", Username: "sara", Password: "other",
				})
				Expect(err).To(MatchError(user.ErrDuplicateUsername))
			})
		})

		Context("when validation fails", func() {
			It("should reject an empty name", func() {
				_, err := service.CreateEmployee(user.CreateUserDTO{
					Username: "sara", Password: "secret",
				})
				Expect(err).To(HaveOccurred())
			})

			It("should reject a malformed join date", func() {
				_, err := service.CreateEmployee(user.CreateUserDTO{
					Name: "سارة", Username: "sara", Password: "secret", JoinDate: "15/01/2024",
				})
				Expect(err).To(HaveOccurred())
			})

			It("should store nothing on a rejected payload", func() {
				_, err := service.CreateEmployee(user.CreateUserDTO{
					Username: "sara", Password: "secret",
				})
				Expect(err).To(HaveOccurred())

				list, err := service.ListEmployees("")
				Expect(err).NotTo(HaveOccurred())
				Expect(list).To(BeEmpty())
			})
		})

		Context("when hashing fails", func() {
			It("should surface the error", func() {
				hasher.hashError = errors.New("hash failure")

				_, err := service.CreateEmployee(user.CreateUserDTO{
					Name: "سارة", Username: "sara", Password: "secret",
				})
				Expect(err).To(MatchError(hasher.hashError))
			})
		})
	})

	Describe("ListEmployees", func() {
		BeforeEach(func() {
			_, err := service.CreateEmployee(user.CreateUserDTO{
				Name: "أحمد محمد", Username: "ahmed", Password: "123", Department: "تقنية المعلومات",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateEmployee(user.CreateUserDTO{
				Name: "سارة أحمد", Username: "sara", Password: "123", Department: "الموارد البشرية",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the whole roster without a query", func() {
			list, err := service.ListEmployees("")
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})

		It("should narrow the roster with a query", func() {
			list, err := service.ListEmployees("تقنية")
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].Username).To(Equal("ahmed"))
		})
	})

	Describe("Directory", func() {
		BeforeEach(func() {
			_, err := service.CreateEmployee(user.CreateUserDTO{
				Name: "أحمد محمد", Username: "ahmed", Password: "123",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateEmployee(user.CreateUserDTO{
				Name: "سارة أحمد", Username: "sara", Password: "123", Department: "الموارد البشرية",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should exclude the caller", func() {
			entries, err := service.Directory(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Name).To(Equal("سارة أحمد"))
		})

		It("should expose only the sanitized card fields", func() {
			entries, err := service.Directory(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries[0].Department).To(Equal("الموارد البشرية"))
			// DirectoryEntry carries no balance, username or contact details
		})
	})
})
