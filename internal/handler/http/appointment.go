package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/groomday/groomday-backend-go/internal/domain/appointment"
	"github.com/groomday/groomday-backend-go/internal/handler/http/middleware"
	"github.com/groomday/groomday-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AppointmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type AppointmentHandlerImpl struct {
	appointmentService appointment.AppointmentService
}

func NewAppointmentHandler(appointmentService appointment.AppointmentService) AppointmentHandler {
	return &AppointmentHandlerImpl{appointmentService: appointmentService}
}

// Create implements AppointmentHandler.
func (h *AppointmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq appointment.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Appointment create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	appointmentResponse, err := h.appointmentService.Create(r.Context(), middleware.ShopID(r), middleware.UserID(r), createReq)
	if err != nil {
		slog.Error("Appointment create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Appointment created successfully", "appointment_id", appointmentResponse.ID)
	response.Created(w, "Appointment created successfully", appointmentResponse)
}

// Get implements AppointmentHandler.
func (h *AppointmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	appointmentResponse, err := h.appointmentService.Get(r.Context(), middleware.ShopID(r), appointmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, appointmentResponse)
}

// List implements AppointmentHandler.
func (h *AppointmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	filter := appointment.ListFilter{
		Date:   r.URL.Query().Get("date"),
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	}

	appointments, total, err := h.appointmentService.List(r.Context(), middleware.ShopID(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, appointments, response.NewMeta(page, limit, total))
}

// Update implements AppointmentHandler.
func (h *AppointmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq appointment.UpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Appointment update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	appointmentResponse, err := h.appointmentService.Update(r.Context(), middleware.ShopID(r), appointmentID, updateReq)
	if err != nil {
		slog.Error("Appointment update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Appointment updated successfully", appointmentResponse)
}

// UpdateStatus implements AppointmentHandler.
func (h *AppointmentHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq appointment.StatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Appointment status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := statusReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	appointmentResponse, err := h.appointmentService.UpdateStatus(r.Context(), middleware.ShopID(r), appointmentID, statusReq)
	if err != nil {
		slog.Error("Appointment status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Appointment status updated successfully", appointmentResponse)
}

// Cancel implements AppointmentHandler.
func (h *AppointmentHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	if err := h.appointmentService.Cancel(r.Context(), middleware.ShopID(r), appointmentID); err != nil {
		slog.Error("Appointment cancel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, "Appointment cancelled successfully")
}
