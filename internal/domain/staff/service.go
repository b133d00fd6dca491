package staff

import "context"

// StaffService defines the interface for shop membership business logic
type StaffService interface {
	// List lists all members of a shop
	List(ctx context.Context, shopID string) ([]Response, error)

	// Update changes a member's role or active flag
	Update(ctx context.Context, shopID, memberID string, req UpdateRequest) (Response, error)

	// Remove deactivates a membership
	Remove(ctx context.Context, shopID, memberID string) error
}
