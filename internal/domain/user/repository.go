package user

import "context"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// AssignShop sets the user's primary shop pointer and role
	AssignShop(ctx context.Context, userID, shopID string, role Role) error
}
