package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/leave-management/internal/assistant"
	"github.com/frahmantamala/leave-management/internal/auth"
	"github.com/frahmantamala/leave-management/internal/leave"
	"github.com/frahmantamala/leave-management/internal/leavetype"
	"github.com/frahmantamala/leave-management/internal/transport/middleware"
	"github.com/frahmantamala/leave-management/internal/transport/swagger"
	"github.com/frahmantamala/leave-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, authService *auth.Service, userHandler *user.Handler, leaveHandler *leave.Handler, leaveTypeHandler *leavetype.Handler, assistantHandler *assistant.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	rbac := authService.RBACAuthorization()

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
				sr.Post("/logout", authHandler.Logout)
			})
		}

		// Public leave type catalog (no auth required)
		if leaveTypeHandler != nil {
			r.Get("/leave-types", leaveTypeHandler.GetLeaveTypes)
		}

		if authHandler != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)

				// User routes
				if userHandler != nil {
					pr.Get("/users/me", userHandler.GetCurrentUser)
					pr.Get("/users/directory", userHandler.Directory)

					// Employee administration is admin-only
					pr.Group(func(ar chi.Router) {
						ar.Use(rbac.RequireAdmin())
						ar.Get("/users", userHandler.ListEmployees)
						ar.Post("/users", userHandler.CreateUser)
					})
				}

				// Leave routes
				if leaveHandler != nil {
					pr.Route("/leaves", func(lr chi.Router) {
						lr.Post("/", leaveHandler.SubmitLeave)
						lr.Get("/", leaveHandler.ListLeaves)
						lr.Get("/{id}", leaveHandler.GetLeave)

						// Review and manual registration require the admin role
						lr.Group(func(ar chi.Router) {
							ar.Use(rbac.RequireAdmin())
							ar.Post("/manual", leaveHandler.RegisterManual)
							ar.Patch("/{id}/approve", leaveHandler.ApproveLeave)
							ar.Patch("/{id}/reject", leaveHandler.RejectLeave)
						})
					})
				}

				// Reason suggestion
				if assistantHandler != nil {
					pr.Post("/assistant/reason", assistantHandler.GenerateReason)
				}
			})
		}
	})
}
