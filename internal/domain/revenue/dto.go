package revenue

import "github.com/shopspring/decimal"

// StatusCount is the appointment count for one status in the period
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ServiceRevenue is the per-catalog-entry breakdown for the period
type ServiceRevenue struct {
	GroomingTypeID string          `json:"grooming_type_id"`
	Name           string          `json:"name"`
	Count          int64           `json:"count"`
	Revenue        decimal.Decimal `json:"revenue"`
}

// Summary is the revenue report for one shop and period. Revenue counts only
// completed and settled appointments.
type Summary struct {
	From              string           `json:"from"`
	To                string           `json:"to"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	TotalAppointments int64            `json:"total_appointments"`
	ByStatus          []StatusCount    `json:"by_status"`
	ByService         []ServiceRevenue `json:"by_service"`
}
