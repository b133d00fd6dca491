package invitation

import (
	"context"
	"time"
)

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	// Create creates a new invitation record
	Create(ctx context.Context, inv Invitation) (Invitation, error)

	// GetByToken retrieves an invitation by exact token match with shop and
	// inviter details joined
	GetByToken(ctx context.Context, token string) (InvitationWithShop, error)

	// GetByID retrieves an invitation
	GetByID(ctx context.Context, id string) (Invitation, error)

	// ExistsPendingByEmail checks if email has a pending invitation in the shop
	ExistsPendingByEmail(ctx context.Context, shopID, email string) (bool, error)

	// ListByShop lists all invitations of a shop, most recent first
	ListByShop(ctx context.Context, shopID string) ([]Invitation, error)

	// MarkAccepted marks an invitation as accepted
	MarkAccepted(ctx context.Context, id string) error

	// MarkCancelled marks an invitation as cancelled
	MarkCancelled(ctx context.Context, id string) error

	// MarkExpired marks an invitation as expired (lazy transition on read)
	MarkExpired(ctx context.Context, id string) error

	// UpdateToken updates the token and expiry date (for resend)
	UpdateToken(ctx context.Context, id, newToken string, expiresAt time.Time) error

	// Delete removes an invitation row (rollback after failed email delivery)
	Delete(ctx context.Context, id string) error
}
