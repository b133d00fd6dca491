package revenue

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRepository defines the aggregation queries behind revenue reports
type RevenueRepository interface {
	// TotalRevenue sums total_amount of completed and settled appointments
	TotalRevenue(ctx context.Context, shopID string, from, to time.Time) (decimal.Decimal, error)

	// CountByStatus counts appointments per status in the period
	CountByStatus(ctx context.Context, shopID string, from, to time.Time) ([]StatusCount, error)

	// ServiceBreakdown aggregates applied prices per grooming service type over
	// completed and settled appointments
	ServiceBreakdown(ctx context.Context, shopID string, from, to time.Time) ([]ServiceRevenue, error)
}
