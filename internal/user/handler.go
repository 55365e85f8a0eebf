package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/leave-management/internal"
	"github.com/frahmantamala/leave-management/internal/transport"
	"github.com/frahmantamala/leave-management/pkg/logger"
)

type ServiceAPI interface {
	CreateEmployee(dto CreateUserDTO) (*User, error)
	GetByID(userID int64) (*User, error)
	ListEmployees(query string) ([]*User, error)
	Directory(excludeUserID int64) ([]DirectoryEntry, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctxUser, ok := internal.UserFromContext(r.Context())
	if !ok || ctxUser == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.Service.GetByID(ctxUser.ID)
	if err != nil {
		h.Logger.Error("GetCurrentUser: service error", "error", err, "user_id", ctxUser.ID)
		h.WriteError(w, http.StatusNotFound, "user not found")
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

// CreateUser handles the admin "add employee" form.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateUser: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateEmployee(dto)
	if err != nil {
		h.Logger.Error("CreateUser: service error", "error", err, "username", dto.Username)

		switch err {
		case ErrDuplicateUsername:
			h.WriteError(w, http.StatusConflict, "username already taken")
		default:
			if appErr, ok := internal.IsAppError(err); ok {
				h.WriteError(w, appErr.StatusCode, appErr.GetDetailedMessage())
			} else {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			}
		}
		return
	}

	h.Logger.Info("CreateUser: employee created", "user_id", created.ID, "username", created.Username)
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	employees, err := h.Service.ListEmployees(query)
	if err != nil {
		h.Logger.Error("ListEmployees: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"employees": employees,
		"count":     len(employees),
	})
}

func (h *Handler) Directory(w http.ResponseWriter, r *http.Request) {
	ctxUser, ok := internal.UserFromContext(r.Context())
	if !ok || ctxUser == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entries, err := h.Service.Directory(ctxUser.ID)
	if err != nil {
		h.Logger.Error("Directory: service error", "error", err, "user_id", ctxUser.ID)
		h.WriteError(w, http.StatusInternalServerError, "failed to load directory")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"colleagues": entries,
		"count":      len(entries),
	})
}
