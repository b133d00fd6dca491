package shop

import (
	"context"
	"io"
)

// ShopService defines the interface for shop business logic
type ShopService interface {
	// Create creates a shop and makes the creator its owner member
	Create(ctx context.Context, ownerUserID string, req CreateRequest) (Response, error)

	// GetByID fetches a shop
	GetByID(ctx context.Context, shopID string) (Response, error)

	// Update updates shop profile fields
	Update(ctx context.Context, shopID string, req UpdateRequest) (Response, error)

	// UploadLogo stores a shop logo image and updates the logo URL
	UploadLogo(ctx context.Context, shopID string, file io.Reader, filename string) (string, error)
}
