package auth

import (
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	coreuser "github.com/frahmantamala/leave-management/internal/core/user"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	credentials map[string]string // username -> password hash
	userIDs     map[string]int64  // username -> user id
	usersByID   map[int64]*coreuser.User
}

func newMockUserRepository() *mockUserRepository {
	// Seeded logins use bcrypt like production does; MinCost keeps the
	// suite fast.
	hash, _ := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.MinCost)

	return &mockUserRepository{
		credentials: map[string]string{
			"admin": string(hash),
			"ahmed": string(hash),
		},
		userIDs: map[string]int64{
			"admin": 1,
			"ahmed": 2,
		},
		usersByID: map[int64]*coreuser.User{
			1: {ID: 1, Username: "admin", Name: "المدير العام", Role: coreuser.RoleAdmin, Balance: 30, IsActive: true},
			2: {ID: 2, Username: "ahmed", Name: "أحمد محمد", Role: coreuser.RoleEmployee, Balance: 21, IsActive: true},
		},
	}
}

func (m *mockUserRepository) GetCredentials(username string) (string, int64, error) {
	hash, exists := m.credentials[username]
	if !exists {
		return "", 0, ErrInvalidCredentials
	}
	return hash, m.userIDs[username], nil
}

func (m *mockUserRepository) GetUserByID(userID int64) (*coreuser.User, error) {
	u, exists := m.usersByID[userID]
	if !exists {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		repo    *mockUserRepository
		service *Service
	)

	ginkgo.BeforeEach(func() {
		repo = newMockUserRepository()
		tokenGen := NewJWTTokenGenerator(
			"test-access-secret-at-least-32-chars!!",
			"test-refresh-secret-at-least-32-chars!",
			15*time.Minute,
			24*time.Hour,
		)
		service = NewService(repo, tokenGen, bcrypt.MinCost)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when the seeded admin logs in", func() {
			ginkgo.It("should return the admin user with a token pair", func() {
				user, tokens, err := service.Authenticate(LoginDTO{Username: "admin", Password: "123"})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(user.ID).To(gomega.Equal(int64(1)))
				gomega.Expect(user.Role).To(gomega.Equal(coreuser.RoleAdmin))
				gomega.Expect(tokens.AccessToken).NotTo(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).NotTo(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when the seeded employee logs in", func() {
			ginkgo.It("should return the employee with their balance", func() {
				user, _, err := service.Authenticate(LoginDTO{Username: "ahmed", Password: "123"})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(user.Name).To(gomega.Equal("أحمد محمد"))
				gomega.Expect(user.Balance).To(gomega.Equal(21))
			})
		})

		ginkgo.Context("when the password is wrong", func() {
			ginkgo.It("should reject with invalid credentials", func() {
				_, _, err := service.Authenticate(LoginDTO{Username: "admin", Password: "wrong"})
				gomega.Expect(err).To(gomega.MatchError(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when the username is unknown", func() {
			ginkgo.It("should report the same invalid credentials error", func() {
				_, _, err := service.Authenticate(LoginDTO{Username: "nobody", Password: "123"})
				gomega.Expect(err).To(gomega.MatchError(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when the account is deactivated", func() {
			ginkgo.It("should reject the login", func() {
				repo.usersByID[2].IsActive = false

				_, _, err := service.Authenticate(LoginDTO{Username: "ahmed", Password: "123"})
				gomega.Expect(err).To(gomega.MatchError(ErrUserInactive))
			})
		})

		ginkgo.Context("when fields are missing", func() {
			ginkgo.It("should fail validation before touching the repository", func() {
				_, _, err := service.Authenticate(LoginDTO{Username: "", Password: ""})
				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("Token round trip", func() {
		ginkgo.It("should validate an issued access token", func() {
			_, tokens, err := service.Authenticate(LoginDTO{Username: "admin", Password: "123"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal(int64(1)))
			gomega.Expect(claims.Username).To(gomega.Equal("admin"))
		})

		ginkgo.It("should reject garbage tokens", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("should issue a fresh pair from a valid refresh token", func() {
			_, tokens, err := service.Authenticate(LoginDTO{Username: "ahmed", Password: "123"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			refreshed, err := service.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(refreshed.AccessToken).NotTo(gomega.BeEmpty())
			gomega.Expect(refreshed.RefreshToken).NotTo(gomega.BeEmpty())
		})

		ginkgo.It("should reject an expired refresh token", func() {
			expiredGen := &JWTTokenGenerator{
				AccessTokenSecret:  []byte("test-access-secret-at-least-32-chars!!"),
				RefreshTokenSecret: []byte("test-refresh-secret-at-least-32-chars!"),
				AccessTokenTTL:     -time.Minute,
				RefreshTokenTTL:    -time.Minute,
			}
			expiredService := NewService(repo, expiredGen, bcrypt.MinCost)

			_, tokens, err := expiredService.Authenticate(LoginDTO{Username: "ahmed", Password: "123"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = expiredService.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.It("should produce a hash that verifies against the original", func() {
			hash, err := service.HashPassword("secret")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(hash).NotTo(gomega.Equal("secret"))
			gomega.Expect(VerifyPassword(hash, "secret")).To(gomega.Succeed())
			gomega.Expect(VerifyPassword(hash, "other")).NotTo(gomega.Succeed())
		})
	})
})
