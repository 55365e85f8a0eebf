package auth

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/leave-management/internal"
	coreuser "github.com/frahmantamala/leave-management/internal/core/user"
)

// RBACAuthorization gates admin-only routes. The system has exactly two
// roles, so authorization reduces to role checks on the context user.
type RBACAuthorization struct {
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{logger: logger}
}

// RequireAdmin rejects requests whose context user does not carry the ADMIN
// role. The auth middleware must run before it.
func (ra *RBACAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := internal.UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !user.IsAdmin() {
				ra.logger.WarnContext(r.Context(), "access denied: admin role required",
					"user_id", user.ID,
					"role", user.Role)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole is the general form used when a route is open to one specific
// role only.
func (ra *RBACAuthorization) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := internal.UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if user.Role != role {
				ra.logger.WarnContext(r.Context(), "access denied: role mismatch",
					"user_id", user.ID,
					"required_role", role,
					"role", user.Role)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IsAdminUser reports whether the given context user may perform
// administrative actions. Exists so services can make the same check the
// middleware does.
func IsAdminUser(u *coreuser.User) bool {
	return u != nil && u.Role == coreuser.RoleAdmin
}
