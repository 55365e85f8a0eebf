package leave_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	coreuser "github.com/frahmantamala/leave-management/internal/core/user"
	"github.com/frahmantamala/leave-management/internal/leave"
	"github.com/frahmantamala/leave-management/internal/user"
)

func TestLeaveService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Leave Service Suite")
}

// Mock repository for testing
type mockLeaveRepository struct {
	leaves            map[int64]*leave.LeaveRequest
	order             []int64 // insertion order, oldest first
	createError       error
	updateStatusError error
	nextID            int64
}

func newMockLeaveRepository() *mockLeaveRepository {
	return &mockLeaveRepository{
		leaves: make(map[int64]*leave.LeaveRequest),
		nextID: 1,
	}
}

func (m *mockLeaveRepository) Create(l *leave.LeaveRequest) error {
	if m.createError != nil {
		return m.createError
	}
	l.ID = m.nextID
	m.nextID++
	m.leaves[l.ID] = l
	m.order = append(m.order, l.ID)
	return nil
}

func (m *mockLeaveRepository) GetByID(id int64) (*leave.LeaveRequest, error) {
	l, exists := m.leaves[id]
	if !exists {
		return nil, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (m *mockLeaveRepository) GetByUserID(userID int64, status string) ([]*leave.LeaveRequest, error) {
	var result []*leave.LeaveRequest
	for i := len(m.order) - 1; i >= 0; i-- {
		l := m.leaves[m.order[i]]
		if l.UserID != userID {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		result = append(result, l)
	}
	return result, nil
}

func (m *mockLeaveRepository) GetAll(status string) ([]*leave.LeaveRequest, error) {
	var result []*leave.LeaveRequest
	for i := len(m.order) - 1; i >= 0; i-- {
		l := m.leaves[m.order[i]]
		if status != "" && l.Status != status {
			continue
		}
		result = append(result, l)
	}
	return result, nil
}

func (m *mockLeaveRepository) UpdateStatus(id int64, status string, processedAt time.Time) error {
	if m.updateStatusError != nil {
		return m.updateStatusError
	}
	l, exists := m.leaves[id]
	if !exists {
		return leave.ErrLeaveNotFound
	}
	l.Status = status
	l.ProcessedAt = &processedAt
	l.UpdatedAt = time.Now()
	return nil
}

// Mock type catalog
type mockTypeCatalog struct {
	validTypes map[string]bool
}

func newMockTypeCatalog() *mockTypeCatalog {
	return &mockTypeCatalog{
		validTypes: map[string]bool{
			"ANNUAL":    true,
			"SICK":      true,
			"EMERGENCY": true,
			"UNPAID":    true,
		},
	}
}

func (m *mockTypeCatalog) IsValidType(name string) bool {
	return m.validTypes[name]
}

// Mock user directory
type mockUserDirectory struct {
	users map[int64]*user.User
}

func newMockUserDirectory() *mockUserDirectory {
	return &mockUserDirectory{users: make(map[int64]*user.User)}
}

func (m *mockUserDirectory) GetByID(userID int64) (*user.User, error) {
	u, exists := m.users[userID]
	if !exists {
		return nil, user.ErrNotFound
	}
	return u, nil
}

var _ = Describe("LeaveService", func() {
	var (
		repo      *mockLeaveRepository
		types     *mockTypeCatalog
		directory *mockUserDirectory
		service   *leave.Service

		employee *coreuser.User
		admin    *coreuser.User
	)

	BeforeEach(func() {
		repo = newMockLeaveRepository()
		types = newMockTypeCatalog()
		directory = newMockUserDirectory()

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		service = leave.NewService(repo, types, directory, nil, logger)

		admin = &coreuser.User{ID: 1, Username: "admin", Name: "المدير العام", Role: coreuser.RoleAdmin, IsActive: true}
		employee = &coreuser.User{ID: 2, Username: "ahmed", Name: "أحمد محمد", Role: coreuser.RoleEmployee, IsActive: true}

		directory.users[employee.ID] = &user.User{ID: employee.ID, Name: employee.Name, Username: employee.Username, Role: employee.Role, IsActive: true}
	})

	Describe("Submit", func() {
		Context("when the submission is valid", func() {
			It("should create a pending request visible at the top of the list", func() {
				created, err := service.Submit(employee, leave.SubmitLeaveDTO{
					LeaveType: "ANNUAL",
					StartDate: "2024-06-01",
					EndDate:   "2024-06-05",
					Reason:    "إجازة عائلية",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(created.Status).To(Equal(leave.StatusPending))
				Expect(created.UserName).To(Equal("أحمد محمد"))
				Expect(created.ID).To(BeNumerically(">", 0))

				list, err := service.List(employee, "", false)
				Expect(err).NotTo(HaveOccurred())
				Expect(list).To(HaveLen(1))
				Expect(list[0].ID).To(Equal(created.ID))
			})

			It("should prepend newer submissions", func() {
				first, err := service.Submit(employee, leave.SubmitLeaveDTO{
					LeaveType: "ANNUAL", StartDate: "2024-06-01", EndDate: "2024-06-02",
				})
				Expect(err).NotTo(HaveOccurred())

				second, err := service.Submit(employee, leave.SubmitLeaveDTO{
					LeaveType: "SICK", StartDate: "2024-07-01", EndDate: "2024-07-01",
				})
				Expect(err).NotTo(HaveOccurred())

				list, err := service.List(employee, "", false)
				Expect(err).NotTo(HaveOccurred())
				Expect(list).To(HaveLen(2))
				Expect(list[0].ID).To(Equal(second.ID))
				Expect(list[1].ID).To(Equal(first.ID))
			})

			It("should allow a single-day span", func() {
				created, err := service.Submit(employee, leave.SubmitLeaveDTO{
					LeaveType: "SICK", StartDate: "2024-06-01", EndDate: "2024-06-01",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(created.Days()).To(Equal(1))
			})
		})

		Context("when the end date precedes the start date", func() {
			It("should return a validation error and store nothing", func() {
				_, err := service.Submit(employee, leave.SubmitLeaveDTO{
					LeaveType: "ANNUAL", StartDate: "2024-06-05", EndDate: "2024-06-01",
				})
				Expect(err).To(HaveOccurred())

				list, listErr := service.List(employee, "", false)
				Expect(listErr).NotTo(HaveOccurred())
				Expect(list).To(BeEmpty())
			})
		})

		Context("when the leave type is unknown", func() {
			It("should reject the submission", func() {
				_, err := service.Submit(employee, leave.SubmitLeaveDTO{
					LeaveType: "SABBATICAL", StartDate: "2024-06-01", EndDate: "2024-06-02",
				})
				Expect(err).To(MatchError(leave.ErrUnknownLeaveType))
			})
		})
	})

	Describe("RegisterManual", func() {
		Context("when an admin records a leave for an employee", func() {
			It("should create the record already approved with the administrative note", func() {
				created, err := service.RegisterManual(admin, leave.ManualLeaveDTO{
					UserID:    employee.ID,
					LeaveType: "EMERGENCY",
					StartDate: "2024-05-10",
					EndDate:   "2024-05-11",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(created.Status).To(Equal(leave.StatusApproved))
				Expect(created.Reason).To(Equal(leave.ManualRegistrationReason))
				Expect(created.ProcessedAt).NotTo(BeNil())
				Expect(created.UserID).To(Equal(employee.ID))
				Expect(created.UserName).To(Equal("أحمد محمد"))
			})
		})

		Context("when the target employee does not exist", func() {
			It("should return a not found error", func() {
				_, err := service.RegisterManual(admin, leave.ManualLeaveDTO{
					UserID:    999,
					LeaveType: "ANNUAL",
					StartDate: "2024-05-10",
					EndDate:   "2024-05-11",
				})
				Expect(err).To(MatchError(user.ErrNotFound))
			})
		})
	})

	Describe("Approve", func() {
		var pending *leave.LeaveRequest

		BeforeEach(func() {
			var err error
			pending, err = service.Submit(employee, leave.SubmitLeaveDTO{
				LeaveType: "ANNUAL", StartDate: "2024-06-01", EndDate: "2024-06-03",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		Context("when approving a pending request", func() {
			It("should move it to APPROVED and stamp the processing time", func() {
				err := service.Approve(pending.ID, admin)
				Expect(err).NotTo(HaveOccurred())

				stored, err := repo.GetByID(pending.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(stored.Status).To(Equal(leave.StatusApproved))
				Expect(stored.ProcessedAt).NotTo(BeNil())
			})
		})

		Context("when the request is already approved", func() {
			It("should succeed without changing anything", func() {
				Expect(service.Approve(pending.ID, admin)).To(Succeed())

				stored, _ := repo.GetByID(pending.ID)
				firstProcessed := *stored.ProcessedAt

				Expect(service.Approve(pending.ID, admin)).To(Succeed())

				stored, _ = repo.GetByID(pending.ID)
				Expect(stored.Status).To(Equal(leave.StatusApproved))
				Expect(*stored.ProcessedAt).To(Equal(firstProcessed))
			})
		})

		Context("when the request was already rejected", func() {
			It("should refuse to revive it", func() {
				Expect(service.Reject(pending.ID, admin)).To(Succeed())

				err := service.Approve(pending.ID, admin)
				Expect(err).To(MatchError(leave.ErrInvalidLeaveStatus))

				stored, _ := repo.GetByID(pending.ID)
				Expect(stored.Status).To(Equal(leave.StatusRejected))
			})
		})

		Context("when the request does not exist", func() {
			It("should return not found and leave the collection unchanged", func() {
				err := service.Approve(999, admin)
				Expect(err).To(MatchError(leave.ErrLeaveNotFound))

				list, _ := service.List(admin, "", false)
				Expect(list).To(HaveLen(1))
				Expect(list[0].Status).To(Equal(leave.StatusPending))
			})
		})
	})

	Describe("Reject", func() {
		var pending *leave.LeaveRequest

		BeforeEach(func() {
			var err error
			pending, err = service.Submit(employee, leave.SubmitLeaveDTO{
				LeaveType: "SICK", StartDate: "2024-06-01", EndDate: "2024-06-01",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should move a pending request to REJECTED", func() {
			Expect(service.Reject(pending.ID, admin)).To(Succeed())

			stored, _ := repo.GetByID(pending.ID)
			Expect(stored.Status).To(Equal(leave.StatusRejected))
			Expect(stored.ProcessedAt).NotTo(BeNil())
		})

		It("should be a no-op on an already rejected request", func() {
			Expect(service.Reject(pending.ID, admin)).To(Succeed())
			Expect(service.Reject(pending.ID, admin)).To(Succeed())

			stored, _ := repo.GetByID(pending.ID)
			Expect(stored.Status).To(Equal(leave.StatusRejected))
		})

		It("should refuse to reject an approved request", func() {
			Expect(service.Approve(pending.ID, admin)).To(Succeed())

			err := service.Reject(pending.ID, admin)
			Expect(err).To(MatchError(leave.ErrInvalidLeaveStatus))
		})
	})

	Describe("GetByID", func() {
		var submitted *leave.LeaveRequest

		BeforeEach(func() {
			var err error
			submitted, err = service.Submit(employee, leave.SubmitLeaveDTO{
				LeaveType: "ANNUAL", StartDate: "2024-06-01", EndDate: "2024-06-02",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should let the owner read their own request", func() {
			found, err := service.GetByID(submitted.ID, employee)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(submitted.ID))
		})

		It("should let an admin read any request", func() {
			found, err := service.GetByID(submitted.ID, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(submitted.ID))
		})

		It("should hide other employees' requests", func() {
			other := &coreuser.User{ID: 3, Username: "sara", Role: coreuser.RoleEmployee, IsActive: true}
			_, err := service.GetByID(submitted.ID, other)
			Expect(err).To(MatchError(leave.ErrUnauthorizedAccess))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			_, err := service.Submit(employee, leave.SubmitLeaveDTO{
				LeaveType: "ANNUAL", StartDate: "2024-06-01", EndDate: "2024-06-02",
			})
			Expect(err).NotTo(HaveOccurred())

			other := &coreuser.User{ID: 3, Username: "sara", Name: "سارة", Role: coreuser.RoleEmployee, IsActive: true}
			_, err = service.Submit(other, leave.SubmitLeaveDTO{
				LeaveType: "SICK", StartDate: "2024-06-10", EndDate: "2024-06-11",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return only the viewer's requests for employees", func() {
			list, err := service.List(employee, "", false)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].UserID).To(Equal(employee.ID))
		})

		It("should return the whole ledger for admins", func() {
			list, err := service.List(admin, "", false)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})

		It("should narrow an admin view to their own requests with mineOnly", func() {
			list, err := service.List(admin, "", true)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("should filter by status", func() {
			all, err := service.List(admin, "", false)
			Expect(err).NotTo(HaveOccurred())
			Expect(service.Approve(all[0].ID, admin)).To(Succeed())

			approved, err := service.List(admin, leave.StatusApproved, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(approved).To(HaveLen(1))

			pending, err := service.List(admin, leave.StatusPending, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
		})
	})
})
