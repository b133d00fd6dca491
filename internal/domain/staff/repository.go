package staff

import "context"

// MemberRepository defines the interface for shop membership data access
type MemberRepository interface {
	// Create inserts a membership row; the unique (shop_id, user_id)
	// constraint rejects concurrent double-joins
	Create(ctx context.Context, m Member) (Member, error)

	GetByID(ctx context.Context, id string) (Member, error)

	// ExistsActive reports whether the user is an active member of the shop
	ExistsActive(ctx context.Context, shopID, userID string) (bool, error)

	ListByShop(ctx context.Context, shopID string) ([]MemberWithUser, error)

	// Update persists role and active flag changes
	Update(ctx context.Context, m Member) (Member, error)
}
