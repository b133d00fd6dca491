package revenue

import (
	"context"
	"time"
)

// RevenueService defines the interface for revenue reporting
type RevenueService interface {
	// GetSummary computes the revenue summary for a shop over [from, to]
	GetSummary(ctx context.Context, shopID string, from, to time.Time) (Summary, error)
}
