package shop

import "context"

// ShopRepository defines the interface for shop data access
type ShopRepository interface {
	Create(ctx context.Context, s Shop) (Shop, error)
	GetByID(ctx context.Context, id string) (Shop, error)
	GetBySlug(ctx context.Context, slug string) (Shop, error)
	Update(ctx context.Context, s Shop) (Shop, error)
	UpdateLogo(ctx context.Context, id, logoURL string) error
}
