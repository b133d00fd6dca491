package grooming

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType is one billable catalog entry of a shop. Catalog entries are
// never physically removed: historical appointment lines reference them, so
// removal only flips IsActive.
type ServiceType struct {
	ID           string
	ShopID       string
	Name         string
	Description  *string
	DefaultPrice decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
