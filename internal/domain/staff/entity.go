package staff

import "time"

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// Member associates a user with a shop. Unique per (shop, user); the database
// constraint is what actually prevents double-joins under concurrency.
type Member struct {
	ID        string
	ShopID    string
	UserID    string
	Role      Role
	IsActive  bool
	JoinedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberWithUser carries member data with joined user fields for listings
type MemberWithUser struct {
	Member
	UserName  string
	UserEmail string
}
