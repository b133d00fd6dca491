package grooming

import "context"

// ServiceTypeRepository defines the interface for catalog data access
type ServiceTypeRepository interface {
	Create(ctx context.Context, t ServiceType) (ServiceType, error)
	GetByID(ctx context.Context, id string) (ServiceType, error)
	GetByShopAndName(ctx context.Context, shopID, name string) (ServiceType, error)
	ListByShop(ctx context.Context, shopID string, includeInactive bool) ([]ServiceType, error)
	Update(ctx context.Context, t ServiceType) (ServiceType, error)
	SetActive(ctx context.Context, id string, active bool) error
}
