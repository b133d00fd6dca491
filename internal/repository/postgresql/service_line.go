package postgresql

import (
	"context"
	"fmt"

	"github.com/groomday/groomday-backend-go/internal/domain/appointment"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
)

type serviceLineRepositoryImpl struct {
	db *database.DB
}

// NewServiceLineRepository creates a new appointment service line repository instance
func NewServiceLineRepository(db *database.DB) appointment.ServiceLineRepository {
	return &serviceLineRepositoryImpl{db: db}
}

// Insert implements appointment.ServiceLineRepository.
func (r *serviceLineRepositoryImpl) Insert(ctx context.Context, appointmentID string, lines []appointment.ValidatedLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO appointment_service_lines (appointment_id, service_type_id, applied_price)
		VALUES ($1, $2, $3)
	`

	for _, line := range lines {
		_, err := q.Exec(ctx, query, appointmentID, line.ServiceTypeID, line.AppliedPrice)
		if err != nil {
			return fmt.Errorf("failed to insert appointment service line: %w", err)
		}
	}

	return nil
}

// DeleteByAppointment implements appointment.ServiceLineRepository.
func (r *serviceLineRepositoryImpl) DeleteByAppointment(ctx context.Context, appointmentID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM appointment_service_lines WHERE appointment_id = $1`

	_, err := q.Exec(ctx, query, appointmentID)
	if err != nil {
		return fmt.Errorf("failed to delete appointment service lines: %w", err)
	}

	return nil
}

// ListByAppointment implements appointment.ServiceLineRepository.
func (r *serviceLineRepositoryImpl) ListByAppointment(ctx context.Context, appointmentID string) ([]appointment.ServiceLineWithName, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.appointment_id, l.service_type_id, l.applied_price, t.name
		FROM appointment_service_lines l
		JOIN grooming_service_types t ON t.id = l.service_type_id
		WHERE l.appointment_id = $1
		ORDER BY t.name ASC
	`

	rows, err := q.Query(ctx, query, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointment service lines: %w", err)
	}
	defer rows.Close()

	var lines []appointment.ServiceLineWithName
	for rows.Next() {
		var l appointment.ServiceLineWithName
		err := rows.Scan(&l.ID, &l.AppointmentID, &l.ServiceTypeID, &l.AppliedPrice, &l.ServiceTypeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment service line: %w", err)
		}
		lines = append(lines, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return lines, nil
}
