package invitation

import "context"

// InvitationService defines the interface for invitation business logic
type InvitationService interface {
	// Create creates a pending invitation and sends the invitation email.
	// If the email cannot be delivered the created row is rolled back.
	Create(ctx context.Context, shopID, inviterUserID string, req CreateRequest) (CreateResponse, error)

	// GetByToken retrieves invitation details by token (public endpoint).
	// A pending invitation past its expiry is transitioned to expired here.
	GetByToken(ctx context.Context, token string) (DetailResponse, error)

	// Accept consumes the invitation and creates the shop membership
	Accept(ctx context.Context, token, userID, userEmail string) (AcceptResponse, error)

	// Cancel cancels a pending invitation
	Cancel(ctx context.Context, shopID, invitationID string) error

	// Resend regenerates token and expiry and re-sends the email.
	// A delivery failure is reported but does not revert the refresh.
	Resend(ctx context.Context, shopID, invitationID string) (ResendResponse, error)

	// ListByShop lists a shop's invitations
	ListByShop(ctx context.Context, shopID string) ([]ListItem, error)
}
