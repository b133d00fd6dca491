package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/groomday/groomday-backend-go/internal/domain/invitation"
	"github.com/groomday/groomday-backend-go/internal/handler/http/middleware"
	"github.com/groomday/groomday-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByToken(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Resend(w http.ResponseWriter, r *http.Request)
}

type InvitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &InvitationHandlerImpl{invitationService: invitationService}
}

// Create implements InvitationHandler.
func (h *InvitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq invitation.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Invitation create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	invitationResponse, err := h.invitationService.Create(r.Context(), middleware.ShopID(r), middleware.UserID(r), createReq)
	if err != nil {
		slog.Error("Invitation create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation created successfully", "invitation_id", invitationResponse.ID)
	response.Created(w, "Invitation sent successfully", invitationResponse)
}

// List implements InvitationHandler.
func (h *InvitationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.invitationService.ListByShop(r.Context(), middleware.ShopID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, invitations)
}

// GetByToken implements InvitationHandler. Public: the token itself is the
// credential.
func (h *InvitationHandlerImpl) GetByToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	detail, err := h.invitationService.GetByToken(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, detail)
}

// Accept implements InvitationHandler. After acceptance the client must
// refresh its access token to pick up the new shop claims.
func (h *InvitationHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	acceptResponse, err := h.invitationService.Accept(r.Context(), token, middleware.UserID(r), middleware.UserEmail(r))
	if err != nil {
		slog.Error("Invitation accept service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation accepted", "shop_id", acceptResponse.ShopID)
	response.SuccessWithMessage(w, "Invitation accepted successfully", acceptResponse)
}

// Cancel implements InvitationHandler.
func (h *InvitationHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	invitationID := chi.URLParam(r, "invitationID")

	if err := h.invitationService.Cancel(r.Context(), middleware.ShopID(r), invitationID); err != nil {
		slog.Error("Invitation cancel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, "Invitation cancelled successfully")
}

// Resend implements InvitationHandler.
func (h *InvitationHandlerImpl) Resend(w http.ResponseWriter, r *http.Request) {
	invitationID := chi.URLParam(r, "invitationID")

	resendResponse, err := h.invitationService.Resend(r.Context(), middleware.ShopID(r), invitationID)
	if err != nil {
		slog.Error("Invitation resend service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation resent successfully", resendResponse)
}
