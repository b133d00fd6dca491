package user

import "time"

type Role string

const (
	// RolePending is assigned to accounts that have not joined a shop yet
	RolePending Role = "pending"
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleOwner   Role = "owner"
)

// User represents an account. A user may own or work at one primary shop.
type User struct {
	ID              string
	ShopID          *string
	Email           string
	Name            string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	EmailVerified   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
