package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/revenue"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type revenueRepositoryImpl struct {
	db *database.DB
}

// NewRevenueRepository creates a new revenue repository instance
func NewRevenueRepository(db *database.DB) revenue.RevenueRepository {
	return &revenueRepositoryImpl{db: db}
}

// TotalRevenue implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) TotalRevenue(ctx context.Context, shopID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM appointments
		WHERE shop_id = $1
			AND scheduled_date BETWEEN $2 AND $3
			AND status IN ('completed', 'settled')
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, shopID, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return total, nil
}

// CountByStatus implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) CountByStatus(ctx context.Context, shopID string, from, to time.Time) ([]revenue.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM appointments
		WHERE shop_id = $1 AND scheduled_date BETWEEN $2 AND $3
		GROUP BY status
		ORDER BY status ASC
	`

	rows, err := q.Query(ctx, query, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments by status: %w", err)
	}
	defer rows.Close()

	var counts []revenue.StatusCount
	for rows.Next() {
		var c revenue.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}

// ServiceBreakdown implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) ServiceBreakdown(ctx context.Context, shopID string, from, to time.Time) ([]revenue.ServiceRevenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, COUNT(*), COALESCE(SUM(l.applied_price), 0)
		FROM appointment_service_lines l
		JOIN appointments a ON a.id = l.appointment_id
		JOIN grooming_service_types t ON t.id = l.service_type_id
		WHERE a.shop_id = $1
			AND a.scheduled_date BETWEEN $2 AND $3
			AND a.status IN ('completed', 'settled')
		GROUP BY t.id, t.name
		ORDER BY SUM(l.applied_price) DESC, t.name ASC
	`

	rows, err := q.Query(ctx, query, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate service revenue: %w", err)
	}
	defer rows.Close()

	var breakdown []revenue.ServiceRevenue
	for rows.Next() {
		var s revenue.ServiceRevenue
		if err := rows.Scan(&s.GroomingTypeID, &s.Name, &s.Count, &s.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan service revenue: %w", err)
		}
		breakdown = append(breakdown, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return breakdown, nil
}
