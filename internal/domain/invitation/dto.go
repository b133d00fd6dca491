package invitation

import (
	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/groomday/groomday-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	// Role defaults to staff when omitted
	if r.Role == "" {
		r.Role = string(staff.RoleStaff)
	}
	if !validator.IsInSlice(r.Role, []string{string(staff.RoleManager), string(staff.RoleStaff)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: manager, staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateResponse deliberately excludes the token: it is delivered only via the
// email side channel, never returned to the inviter.
type CreateResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
}

// ShopSummary is the shop view shown to an unauthenticated invitee
type ShopSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url,omitempty"`
}

// DetailResponse - GET /invitations/token/{token}. Excludes the token itself
// and internal ids an unauthenticated viewer does not need.
type DetailResponse struct {
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	Shop        ShopSummary `json:"shop"`
	InviterName string      `json:"inviter_name"`
	ExpiresAt   string      `json:"expires_at"`
}

// AcceptResponse for invitation acceptance result
type AcceptResponse struct {
	ShopID   string `json:"shop_id"`
	ShopName string `json:"shop_name"`
	Role     string `json:"role"`
}

// ResendResponse reports the refreshed expiry
type ResendResponse struct {
	ExpiresAt string `json:"expires_at"`
}

// ListItem - invitation listing for shop managers
type ListItem struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
	CreatedAt string `json:"created_at"`
}
