package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/groomday/groomday-backend-go/internal/domain/grooming"
	"github.com/groomday/groomday-backend-go/internal/handler/http/middleware"
	"github.com/groomday/groomday-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type GroomingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type GroomingHandlerImpl struct {
	groomingService grooming.GroomingService
}

func NewGroomingHandler(groomingService grooming.GroomingService) GroomingHandler {
	return &GroomingHandlerImpl{groomingService: groomingService}
}

// Create implements GroomingHandler.
func (h *GroomingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq grooming.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Grooming type create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	typeResponse, err := h.groomingService.Create(r.Context(), middleware.ShopID(r), createReq)
	if err != nil {
		slog.Error("Grooming type create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Grooming service type created successfully", typeResponse)
}

// Get implements GroomingHandler.
func (h *GroomingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "typeID")

	typeResponse, err := h.groomingService.Get(r.Context(), middleware.ShopID(r), typeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, typeResponse)
}

// List implements GroomingHandler.
func (h *GroomingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	types, err := h.groomingService.List(r.Context(), middleware.ShopID(r), includeInactive)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

// Update implements GroomingHandler.
func (h *GroomingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq grooming.UpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Grooming type update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	typeID := chi.URLParam(r, "typeID")
	typeResponse, err := h.groomingService.Update(r.Context(), middleware.ShopID(r), typeID, updateReq)
	if err != nil {
		slog.Error("Grooming type update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Grooming service type updated successfully", typeResponse)
}

// Deactivate implements GroomingHandler.
func (h *GroomingHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "typeID")

	if err := h.groomingService.Deactivate(r.Context(), middleware.ShopID(r), typeID); err != nil {
		slog.Error("Grooming type deactivate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, "Grooming service type deactivated successfully")
}
