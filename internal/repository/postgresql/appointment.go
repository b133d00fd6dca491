package postgresql

import (
	"context"
	"fmt"

	"github.com/groomday/groomday-backend-go/internal/domain/appointment"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type appointmentRepositoryImpl struct {
	db *database.DB
}

// NewAppointmentRepository creates a new appointment repository instance
func NewAppointmentRepository(db *database.DB) appointment.AppointmentRepository {
	return &appointmentRepositoryImpl{db: db}
}

const appointmentColumns = `id, shop_id, dog_id, created_by_user_id, assigned_user_id, scheduled_date, start_time, end_time, grooming_type, memo, total_amount, status, created_at, updated_at`

func scanAppointment(row pgx.Row) (appointment.Appointment, error) {
	var a appointment.Appointment
	err := row.Scan(
		&a.ID, &a.ShopID, &a.DogID, &a.CreatedByUserID, &a.AssignedUserID,
		&a.ScheduledDate, &a.StartTime, &a.EndTime, &a.GroomingType, &a.Memo,
		&a.TotalAmount, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) Create(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO appointments (shop_id, dog_id, created_by_user_id, assigned_user_id, scheduled_date, start_time, end_time, grooming_type, memo, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + appointmentColumns

	created, err := scanAppointment(q.QueryRow(ctx, query,
		a.ShopID, a.DogID, a.CreatedByUserID, a.AssignedUserID, a.ScheduledDate,
		a.StartTime, a.EndTime, a.GroomingType, a.Memo, a.TotalAmount, a.Status,
	))
	if err != nil {
		return appointment.Appointment{}, fmt.Errorf("failed to create appointment: %w", err)
	}

	return created, nil
}

const appointmentDetailQuery = `
	SELECT
		a.id, a.shop_id, a.dog_id, a.created_by_user_id, a.assigned_user_id,
		a.scheduled_date, a.start_time, a.end_time, a.grooming_type, a.memo,
		a.total_amount, a.status, a.created_at, a.updated_at,
		d.name AS dog_name,
		c.id AS customer_id, c.name AS customer_name,
		u.name AS assignee_name
	FROM appointments a
	JOIN dogs d ON d.id = a.dog_id
	JOIN customers c ON c.id = d.customer_id
	LEFT JOIN users u ON u.id = a.assigned_user_id
`

func scanAppointmentDetail(row pgx.Row) (appointment.AppointmentWithDetails, error) {
	var a appointment.AppointmentWithDetails
	err := row.Scan(
		&a.ID, &a.ShopID, &a.DogID, &a.CreatedByUserID, &a.AssignedUserID,
		&a.ScheduledDate, &a.StartTime, &a.EndTime, &a.GroomingType, &a.Memo,
		&a.TotalAmount, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.DogName, &a.CustomerID, &a.CustomerName, &a.AssigneeName,
	)
	return a, err
}

// GetByID implements appointment.AppointmentRepository. Service lines are
// loaded separately by the caller.
func (r *appointmentRepositoryImpl) GetByID(ctx context.Context, id string) (appointment.AppointmentWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := appointmentDetailQuery + ` WHERE a.id = $1`

	a, err := scanAppointmentDetail(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return appointment.AppointmentWithDetails{}, appointment.ErrAppointmentNotFound
		}
		return appointment.AppointmentWithDetails{}, fmt.Errorf("failed to get appointment: %w", err)
	}

	return a, nil
}

// List implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) List(ctx context.Context, shopID string, filter appointment.ListFilter) ([]appointment.AppointmentWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := appointmentDetailQuery + `
		WHERE a.shop_id = $1
			AND ($2 = '' OR a.scheduled_date = $2::date)
			AND ($3 = '' OR a.status = $3)
		ORDER BY a.scheduled_date ASC, a.start_time ASC
		LIMIT $4 OFFSET $5
	`

	rows, err := q.Query(ctx, query, shopID, filter.Date, filter.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []appointment.AppointmentWithDetails
	for rows.Next() {
		a, err := scanAppointmentDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return appointments, nil
}

// Count implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) Count(ctx context.Context, shopID string, filter appointment.ListFilter) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM appointments a
		WHERE a.shop_id = $1
			AND ($2 = '' OR a.scheduled_date = $2::date)
			AND ($3 = '' OR a.status = $3)
	`

	var count int64
	err := q.QueryRow(ctx, query, shopID, filter.Date, filter.Status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	return count, nil
}

// Update implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) Update(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE appointments
		SET assigned_user_id = $1, scheduled_date = $2, start_time = $3, end_time = $4,
			grooming_type = $5, memo = $6, total_amount = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + appointmentColumns

	updated, err := scanAppointment(q.QueryRow(ctx, query,
		a.AssignedUserID, a.ScheduledDate, a.StartTime, a.EndTime,
		a.GroomingType, a.Memo, a.TotalAmount, a.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return appointment.Appointment{}, appointment.ErrAppointmentNotFound
		}
		return appointment.Appointment{}, fmt.Errorf("failed to update appointment: %w", err)
	}

	return updated, nil
}

// UpdateStatus implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) UpdateStatus(ctx context.Context, id string, status appointment.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE appointments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return appointment.ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	return nil
}
