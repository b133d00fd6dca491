package customer

import (
	"context"
	"io"
)

// CustomerService defines the interface for customer/dog business logic
type CustomerService interface {
	Create(ctx context.Context, shopID string, req CreateRequest) (Response, error)
	Get(ctx context.Context, shopID, customerID string) (Response, error)
	List(ctx context.Context, shopID, search string, page, limit int) ([]Response, int64, error)
	Update(ctx context.Context, shopID, customerID string, req UpdateRequest) (Response, error)
	Delete(ctx context.Context, shopID, customerID string) error

	AddDog(ctx context.Context, shopID, customerID string, req DogRequest) (DogResponse, error)
	UpdateDog(ctx context.Context, shopID, dogID string, req DogRequest) (DogResponse, error)
	DeleteDog(ctx context.Context, shopID, dogID string) error

	// UploadDogPhoto stores a dog photo and updates the photo URL
	UploadDogPhoto(ctx context.Context, shopID, dogID string, file io.Reader, filename string) (string, error)
}
