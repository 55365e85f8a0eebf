package assistant

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/leave-management/internal/leavetype"
	"github.com/frahmantamala/leave-management/internal/transport"
)

type GenerateReasonRequest struct {
	LeaveType string `json:"leave_type"`
	Keywords  string `json:"keywords"`
}

type GenerateReasonResponse struct {
	Reason string `json:"reason"`
}

type ServiceAPI interface {
	GenerateReason(ctx context.Context, typeLabel, keywords string) string
}

// TypeCatalog resolves a canonical type name to its display label.
type TypeCatalog interface {
	GetTypeByName(name string) (*leavetype.LeaveTypeResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Types   TypeCatalog
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, types TypeCatalog) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Types:       types,
	}
}

func (h *Handler) GenerateReason(w http.ResponseWriter, r *http.Request) {
	var req GenerateReasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("GenerateReason: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An unknown type is not an error here: the assistant can still
	// compose text around whatever name the client sent.
	typeLabel := req.LeaveType
	if lt, err := h.Types.GetTypeByName(req.LeaveType); err == nil && lt != nil {
		typeLabel = lt.Label
	}

	reason := h.Service.GenerateReason(r.Context(), typeLabel, req.Keywords)

	h.WriteJSON(w, http.StatusOK, GenerateReasonResponse{Reason: reason})
}
