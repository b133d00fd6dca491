package grooming

import "context"

// GroomingService defines the interface for catalog business logic
type GroomingService interface {
	Create(ctx context.Context, shopID string, req CreateRequest) (Response, error)
	Get(ctx context.Context, shopID, typeID string) (Response, error)
	List(ctx context.Context, shopID string, includeInactive bool) ([]Response, error)
	Update(ctx context.Context, shopID, typeID string, req UpdateRequest) (Response, error)

	// Deactivate performs the logical delete: the row survives for
	// historical appointment lines but can no longer be attached
	Deactivate(ctx context.Context, shopID, typeID string) error
}
