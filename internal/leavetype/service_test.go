package leavetype_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	leavetypeDatamodel "github.com/frahmantamala/leave-management/internal/core/datamodel/leavetype"
	"github.com/frahmantamala/leave-management/internal/leavetype"
)

func TestLeaveTypeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "LeaveType Service Suite")
}

// MockRepository implements leavetype.RepositoryAPI for testing
type MockRepository struct {
	types      map[string]*leavetypeDatamodel.LeaveType
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		types: make(map[string]*leavetypeDatamodel.LeaveType),
	}
}

func (m *MockRepository) GetAll() ([]*leavetypeDatamodel.LeaveType, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*leavetypeDatamodel.LeaveType
	for _, lt := range m.types {
		result = append(result, lt)
	}
	return result, nil
}

func (m *MockRepository) GetByName(name string) (*leavetypeDatamodel.LeaveType, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	lt, exists := m.types[name]
	if !exists {
		return nil, nil
	}
	return lt, nil
}

func (m *MockRepository) Create(lt *leavetypeDatamodel.LeaveType) error {
	if m.shouldFail {
		return m.failError
	}
	m.types[lt.Name] = lt
	return nil
}

func (m *MockRepository) Update(lt *leavetypeDatamodel.LeaveType) error {
	if m.shouldFail {
		return m.failError
	}
	m.types[lt.Name] = lt
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	for name, lt := range m.types {
		if lt.ID == id {
			lt.IsActive = false
			m.types[name] = lt
			break
		}
	}
	return nil
}

var _ = Describe("LeaveTypeService", func() {
	var (
		repo    *MockRepository
		service *leavetype.Service
	)

	BeforeEach(func() {
		repo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		service = leavetype.NewService(repo, logger)

		repo.types["ANNUAL"] = &leavetypeDatamodel.LeaveType{ID: 1, Name: "ANNUAL", Label: "سنوية", IsActive: true}
		repo.types["SICK"] = &leavetypeDatamodel.LeaveType{ID: 2, Name: "SICK", Label: "مرضية", IsActive: true}
		repo.types["UNPAID"] = &leavetypeDatamodel.LeaveType{ID: 3, Name: "UNPAID", Label: "بدون راتب", IsActive: false}
	})

	Describe("GetAllTypes", func() {
		It("should return only active types with their labels", func() {
			types, err := service.GetAllTypes()
			Expect(err).NotTo(HaveOccurred())
			Expect(types).To(HaveLen(2))

			names := []string{types[0].Name, types[1].Name}
			Expect(names).To(ContainElements("ANNUAL", "SICK"))
			Expect(names).NotTo(ContainElement("UNPAID"))
		})

		It("should surface repository errors", func() {
			repo.shouldFail = true
			repo.failError = errors.New("db down")

			_, err := service.GetAllTypes()
			Expect(err).To(MatchError(repo.failError))
		})
	})

	Describe("GetTypeByName", func() {
		It("should return an active type", func() {
			lt, err := service.GetTypeByName("SICK")
			Expect(err).NotTo(HaveOccurred())
			Expect(lt).NotTo(BeNil())
			Expect(lt.Label).To(Equal("مرضية"))
		})

		It("should hide deactivated types", func() {
			lt, err := service.GetTypeByName("UNPAID")
			Expect(err).NotTo(HaveOccurred())
			Expect(lt).To(BeNil())
		})

		It("should return nil for an unknown name", func() {
			lt, err := service.GetTypeByName("SABBATICAL")
			Expect(err).NotTo(HaveOccurred())
			Expect(lt).To(BeNil())
		})
	})

	Describe("IsValidType", func() {
		It("should accept active catalog names", func() {
			Expect(service.IsValidType("ANNUAL")).To(BeTrue())
		})

		It("should reject deactivated and unknown names", func() {
			Expect(service.IsValidType("UNPAID")).To(BeFalse())
			Expect(service.IsValidType("SABBATICAL")).To(BeFalse())
		})

		It("should be case sensitive like the catalog", func() {
			Expect(service.IsValidType("annual")).To(BeFalse())
		})
	})
})
