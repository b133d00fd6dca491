package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/groomday/groomday-backend-go/internal/domain/customer"
	"github.com/groomday/groomday-backend-go/internal/handler/http/middleware"
	"github.com/groomday/groomday-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CustomerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	AddDog(w http.ResponseWriter, r *http.Request)
	UpdateDog(w http.ResponseWriter, r *http.Request)
	DeleteDog(w http.ResponseWriter, r *http.Request)
	UploadDogPhoto(w http.ResponseWriter, r *http.Request)
}

type CustomerHandlerImpl struct {
	customerService customer.CustomerService
}

func NewCustomerHandler(customerService customer.CustomerService) CustomerHandler {
	return &CustomerHandlerImpl{customerService: customerService}
}

// Create implements CustomerHandler.
func (h *CustomerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq customer.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Customer create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	customerResponse, err := h.customerService.Create(r.Context(), middleware.ShopID(r), createReq)
	if err != nil {
		slog.Error("Customer create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Customer created successfully", customerResponse)
}

// Get implements CustomerHandler.
func (h *CustomerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	customerResponse, err := h.customerService.Get(r.Context(), middleware.ShopID(r), customerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, customerResponse)
}

// List implements CustomerHandler.
func (h *CustomerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	customers, total, err := h.customerService.List(r.Context(), middleware.ShopID(r), search, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, customers, response.NewMeta(page, limit, total))
}

// Update implements CustomerHandler.
func (h *CustomerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq customer.UpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Customer update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	customerID := chi.URLParam(r, "customerID")
	customerResponse, err := h.customerService.Update(r.Context(), middleware.ShopID(r), customerID, updateReq)
	if err != nil {
		slog.Error("Customer update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer updated successfully", customerResponse)
}

// Delete implements CustomerHandler.
func (h *CustomerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	if err := h.customerService.Delete(r.Context(), middleware.ShopID(r), customerID); err != nil {
		slog.Error("Customer delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, "Customer deleted successfully")
}

// AddDog implements CustomerHandler.
func (h *CustomerHandlerImpl) AddDog(w http.ResponseWriter, r *http.Request) {
	var dogReq customer.DogRequest

	if err := json.NewDecoder(r.Body).Decode(&dogReq); err != nil {
		slog.Error("Dog create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := dogReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	customerID := chi.URLParam(r, "customerID")
	dogResponse, err := h.customerService.AddDog(r.Context(), middleware.ShopID(r), customerID, dogReq)
	if err != nil {
		slog.Error("Dog create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Dog added successfully", dogResponse)
}

// UpdateDog implements CustomerHandler.
func (h *CustomerHandlerImpl) UpdateDog(w http.ResponseWriter, r *http.Request) {
	var dogReq customer.DogRequest

	if err := json.NewDecoder(r.Body).Decode(&dogReq); err != nil {
		slog.Error("Dog update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := dogReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	dogID := chi.URLParam(r, "dogID")
	dogResponse, err := h.customerService.UpdateDog(r.Context(), middleware.ShopID(r), dogID, dogReq)
	if err != nil {
		slog.Error("Dog update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Dog updated successfully", dogResponse)
}

// DeleteDog implements CustomerHandler.
func (h *CustomerHandlerImpl) DeleteDog(w http.ResponseWriter, r *http.Request) {
	dogID := chi.URLParam(r, "dogID")

	if err := h.customerService.DeleteDog(r.Context(), middleware.ShopID(r), dogID); err != nil {
		slog.Error("Dog delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, "Dog deleted successfully")
}

// UploadDogPhoto implements CustomerHandler.
func (h *CustomerHandlerImpl) UploadDogPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Photo file is required", nil)
		return
	}
	defer file.Close()

	dogID := chi.URLParam(r, "dogID")
	url, err := h.customerService.UploadDogPhoto(r.Context(), middleware.ShopID(r), dogID, file, header.Filename)
	if err != nil {
		slog.Error("Dog photo upload error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo uploaded successfully", map[string]string{"photo_url": url})
}
