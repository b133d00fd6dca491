package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/groomday/groomday-backend-go/internal/handler/http/middleware"
	"github.com/groomday/groomday-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffService.List(r.Context(), middleware.ShopID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, members)
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq staff.UpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Staff update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	memberID := chi.URLParam(r, "memberID")
	member, err := h.staffService.Update(r.Context(), middleware.ShopID(r), memberID, updateReq)
	if err != nil {
		slog.Error("Staff update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member updated successfully", member)
}

// Remove implements StaffHandler.
func (h *StaffHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")
	if err := h.staffService.Remove(r.Context(), middleware.ShopID(r), memberID); err != nil {
		slog.Error("Staff remove service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, "Staff member removed successfully")
}
