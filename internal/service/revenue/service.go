package revenue

import (
	"context"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/revenue"
)

type RevenueServiceImpl struct {
	revenue.RevenueRepository
}

func NewRevenueService(revenueRepository revenue.RevenueRepository) revenue.RevenueService {
	return &RevenueServiceImpl{
		RevenueRepository: revenueRepository,
	}
}

// GetSummary implements revenue.RevenueService.
func (s *RevenueServiceImpl) GetSummary(ctx context.Context, shopID string, from, to time.Time) (revenue.Summary, error) {
	total, err := s.RevenueRepository.TotalRevenue(ctx, shopID, from, to)
	if err != nil {
		return revenue.Summary{}, err
	}

	byStatus, err := s.RevenueRepository.CountByStatus(ctx, shopID, from, to)
	if err != nil {
		return revenue.Summary{}, err
	}

	byService, err := s.RevenueRepository.ServiceBreakdown(ctx, shopID, from, to)
	if err != nil {
		return revenue.Summary{}, err
	}

	var totalAppointments int64
	for _, c := range byStatus {
		totalAppointments += c.Count
	}

	if byStatus == nil {
		byStatus = []revenue.StatusCount{}
	}
	if byService == nil {
		byService = []revenue.ServiceRevenue{}
	}

	return revenue.Summary{
		From:              from.Format("2006-01-02"),
		To:                to.Format("2006-01-02"),
		TotalRevenue:      total,
		TotalAppointments: totalAppointments,
		ByStatus:          byStatus,
		ByService:         byService,
	}, nil
}
