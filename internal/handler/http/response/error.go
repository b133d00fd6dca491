package response

import (
	"errors"
	"net/http"

	"github.com/groomday/groomday-backend-go/internal/domain/appointment"
	"github.com/groomday/groomday-backend-go/internal/domain/auth"
	"github.com/groomday/groomday-backend-go/internal/domain/customer"
	"github.com/groomday/groomday-backend-go/internal/domain/grooming"
	"github.com/groomday/groomday-backend-go/internal/domain/invitation"
	"github.com/groomday/groomday-backend-go/internal/domain/shop"
	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/groomday/groomday-backend-go/internal/domain/user"
	"github.com/groomday/groomday-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrOwnerAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrShopIDRequired):
		Forbidden(w, "Join or create a shop first")

	// Shop domain errors
	case errors.Is(err, shop.ErrShopNotFound):
		NotFound(w, "Shop not found")
	case errors.Is(err, shop.ErrSlugExists):
		Conflict(w, "Shop slug already taken")
	case errors.Is(err, shop.ErrUserAlreadyHasShop):
		Conflict(w, "User already belongs to a shop")

	// Staff domain errors
	case errors.Is(err, staff.ErrMemberNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrAlreadyMember):
		Conflict(w, "User is already a member of this shop")
	case errors.Is(err, staff.ErrCannotModifyOwner):
		Forbidden(w, "The shop owner membership cannot be modified")
	case errors.Is(err, staff.ErrInvalidRole):
		BadRequest(w, "Invalid staff role", nil)

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		Gone(w, "Invitation has expired")
	case errors.Is(err, invitation.ErrInvitationAlreadyAccepted):
		Conflict(w, "Invitation has already been accepted")
	case errors.Is(err, invitation.ErrInvitationAlreadyProcessed):
		Conflict(w, "Invitation has already been processed")
	case errors.Is(err, invitation.ErrEmailMismatch):
		Forbidden(w, "Your email does not match the invitation email")
	case errors.Is(err, invitation.ErrAlreadyMember):
		Conflict(w, "You are already a member of this shop")
	case errors.Is(err, invitation.ErrDuplicatePendingInvitation):
		Conflict(w, "Email already has a pending invitation for this shop")
	case errors.Is(err, invitation.ErrInvalidState):
		Conflict(w, "Only pending invitations can be modified")
	case errors.Is(err, invitation.ErrEmailDeliveryFailed):
		BadGateway(w, "Invitation email could not be delivered")

	// Customer domain errors
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, customer.ErrDogNotFound):
		NotFound(w, "Dog not found")
	case errors.Is(err, customer.ErrPhoneExists):
		Conflict(w, "Phone number already registered in this shop")

	// Grooming catalog errors
	case errors.Is(err, grooming.ErrServiceTypeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, grooming.ErrServiceTypeInactive):
		Conflict(w, err.Error())
	case errors.Is(err, grooming.ErrNameExists):
		Conflict(w, "A grooming service type with this name already exists")

	// Appointment domain errors
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		NotFound(w, "Appointment not found")
	case errors.Is(err, appointment.ErrInvalidStatus):
		BadRequest(w, "Invalid appointment status", nil)
	case errors.Is(err, appointment.ErrAssigneeNotMember):
		BadRequest(w, "Assigned user is not an active member of this shop", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

func Gone(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusGone, Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    "GONE",
			Message: message,
		},
	})
}

func BadGateway(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadGateway, Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    "EMAIL_DELIVERY_FAILED",
			Message: message,
		},
	})
}
