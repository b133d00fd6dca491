package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/groomday/groomday-backend-go/internal/domain/shop"
	"github.com/groomday/groomday-backend-go/internal/handler/http/middleware"
	"github.com/groomday/groomday-backend-go/internal/handler/http/response"
)

type ShopHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
	UpdateMy(w http.ResponseWriter, r *http.Request)
	UploadLogo(w http.ResponseWriter, r *http.Request)
}

type ShopHandlerImpl struct {
	shopService shop.ShopService
}

func NewShopHandler(shopService shop.ShopService) ShopHandler {
	return &ShopHandlerImpl{shopService: shopService}
}

// Create implements ShopHandler. After creation the client must refresh its
// access token to pick up the new shop id and owner role claims.
func (h *ShopHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq shop.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Shop create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	shopResponse, err := h.shopService.Create(r.Context(), middleware.UserID(r), createReq)
	if err != nil {
		slog.Error("Shop create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shop created successfully", "shop_id", shopResponse.ID)
	response.Created(w, "Shop created successfully", shopResponse)
}

// GetMy implements ShopHandler.
func (h *ShopHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	shopResponse, err := h.shopService.GetByID(r.Context(), middleware.ShopID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, shopResponse)
}

// UpdateMy implements ShopHandler.
func (h *ShopHandlerImpl) UpdateMy(w http.ResponseWriter, r *http.Request) {
	var updateReq shop.UpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Shop update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	shopResponse, err := h.shopService.Update(r.Context(), middleware.ShopID(r), updateReq)
	if err != nil {
		slog.Error("Shop update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shop updated successfully", shopResponse)
}

// UploadLogo implements ShopHandler.
func (h *ShopHandlerImpl) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		response.BadRequest(w, "Logo file is required", nil)
		return
	}
	defer file.Close()

	url, err := h.shopService.UploadLogo(r.Context(), middleware.ShopID(r), file, header.Filename)
	if err != nil {
		slog.Error("Shop logo upload error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logo uploaded successfully", map[string]string{"logo_url": url})
}
