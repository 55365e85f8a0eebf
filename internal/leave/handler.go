package leave

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/leave-management/internal"
	coreuser "github.com/frahmantamala/leave-management/internal/core/user"
	"github.com/frahmantamala/leave-management/internal/transport"
	"github.com/frahmantamala/leave-management/internal/user"
	"github.com/frahmantamala/leave-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Submit(requester *coreuser.User, dto SubmitLeaveDTO) (*LeaveRequest, error)
	RegisterManual(admin *coreuser.User, dto ManualLeaveDTO) (*LeaveRequest, error)
	GetByID(id int64, viewer *coreuser.User) (*LeaveRequest, error)
	List(viewer *coreuser.User, status string, mineOnly bool) ([]*LeaveRequest, error)
	Approve(leaveID int64, reviewer *coreuser.User) error
	Reject(leaveID int64, reviewer *coreuser.User) error
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

func (h *Handler) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("SubmitLeave: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto SubmitLeaveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitLeave: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	leave, err := h.Service.Submit(user, dto)
	if err != nil {
		h.Logger.Error("SubmitLeave: service error", "error", err, "user_id", user.ID)
		h.handleWorkflowError(w, err)
		return
	}

	h.Logger.Info("SubmitLeave: leave request created",
		"leave_id", leave.ID,
		"user_id", user.ID,
		"status", leave.Status)

	h.WriteJSON(w, http.StatusCreated, leave)
}

// RegisterManual creates a pre-approved record on an employee's behalf.
// Reaching here requires the admin role; the router enforces it.
func (h *Handler) RegisterManual(w http.ResponseWriter, r *http.Request) {
	admin, ok := internal.UserFromContext(r.Context())
	if !ok || admin == nil {
		h.Logger.Error("RegisterManual: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto ManualLeaveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("RegisterManual: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	leave, err := h.Service.RegisterManual(admin, dto)
	if err != nil {
		h.Logger.Error("RegisterManual: service error", "error", err, "admin_id", admin.ID)
		h.handleWorkflowError(w, err)
		return
	}

	h.Logger.Info("RegisterManual: leave recorded",
		"leave_id", leave.ID,
		"user_id", leave.UserID,
		"admin_id", admin.ID)

	h.WriteJSON(w, http.StatusCreated, leave)
}

func (h *Handler) GetLeave(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	leaveID, err := h.leaveIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid leave ID")
		return
	}

	leave, err := h.Service.GetByID(leaveID, user)
	if err != nil {
		h.Logger.Error("GetLeave: service error", "error", err, "leave_id", leaveID, "user_id", user.ID)
		h.handleWorkflowError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, leave)
}

func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	status := r.URL.Query().Get("status")
	mineOnly := r.URL.Query().Get("mine") == "true"

	leaves, err := h.Service.List(user, status, mineOnly)
	if err != nil {
		h.Logger.Error("ListLeaves: service error", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusInternalServerError, "failed to list leave requests")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"leaves": leaves,
		"count":  len(leaves),
	})
}

func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, "approve", func(id int64, reviewer *coreuser.User) error {
		return h.Service.Approve(id, reviewer)
	})
}

func (h *Handler) RejectLeave(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, "reject", func(id int64, reviewer *coreuser.User) error {
		return h.Service.Reject(id, reviewer)
	})
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, action string, fn func(int64, *coreuser.User) error) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	leaveID, err := h.leaveIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid leave ID")
		return
	}

	if err := fn(leaveID, user); err != nil {
		h.Logger.Error("review: service error",
			"action", action,
			"error", err,
			"leave_id", leaveID,
			"reviewer_id", user.ID)
		h.handleWorkflowError(w, err)
		return
	}

	h.Logger.Info("review: leave request processed",
		"action", action,
		"leave_id", leaveID,
		"reviewer_id", user.ID)

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": action + "d"})
}

func (h *Handler) leaveIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) handleWorkflowError(w http.ResponseWriter, err error) {
	switch err {
	case ErrLeaveNotFound:
		h.WriteError(w, http.StatusNotFound, "leave request not found")
	case ErrInvalidLeaveStatus:
		h.WriteError(w, http.StatusBadRequest, "leave request cannot be processed in its current status")
	case ErrUnknownLeaveType:
		h.WriteError(w, http.StatusBadRequest, "unknown leave type")
	case ErrUnauthorizedAccess:
		h.WriteError(w, http.StatusForbidden, "access denied")
	default:
		if errors.Is(err, user.ErrNotFound) {
			h.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		if appErr, ok := internal.IsAppError(err); ok {
			h.WriteError(w, appErr.StatusCode, appErr.GetDetailedMessage())
			return
		}
		h.WriteError(w, http.StatusBadRequest, err.Error())
	}
}
