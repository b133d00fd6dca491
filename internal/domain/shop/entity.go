package shop

import "time"

// Shop represents a grooming shop tenant. All catalog and scheduling data is
// scoped to one shop.
type Shop struct {
	ID        string
	Name      string
	Slug      string
	Phone     *string
	Address   *string
	LogoURL   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
