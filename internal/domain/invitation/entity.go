package invitation

import "time"

// Status represents the status of an invitation
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Invitation grants a specific email the time-boxed, single-use right to join
// a specific shop with a specific role. The token is the only lookup key
// exposed outside the shop.
type Invitation struct {
	ID              string
	ShopID          string
	InvitedByUserID string
	Email           string
	Token           string
	Role            string // "manager" or "staff"
	Status          Status
	ExpiresAt       time.Time
	AcceptedAt      *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InvitationWithShop contains invitation data with joined related names
type InvitationWithShop struct {
	Invitation
	ShopName    string
	ShopLogo    *string
	InviterName string
}

// IsExpired checks if the invitation has passed its expiry (query-time check;
// the persisted status flips lazily on first read past expiry)
func (i *Invitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// CanBeAccepted checks if the invitation can be accepted
func (i *Invitation) CanBeAccepted() bool {
	return i.Status == StatusPending && !i.IsExpired()
}
