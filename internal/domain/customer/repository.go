package customer

import "context"

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, c Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context, shopID, search string, limit, offset int) ([]Customer, error)
	Count(ctx context.Context, shopID, search string) (int64, error)
	Update(ctx context.Context, c Customer) (Customer, error)
	Delete(ctx context.Context, id string) error
}

// DogRepository defines the interface for dog data access
type DogRepository interface {
	Create(ctx context.Context, d Dog) (Dog, error)
	GetByID(ctx context.Context, id string) (Dog, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Dog, error)
	Update(ctx context.Context, d Dog) (Dog, error)
	UpdatePhoto(ctx context.Context, id, photoURL string) error
	Delete(ctx context.Context, id string) error
}
