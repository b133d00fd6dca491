package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/groomday/groomday-backend-go/internal/domain/grooming"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type serviceTypeRepositoryImpl struct {
	db *database.DB
}

// NewServiceTypeRepository creates a new grooming catalog repository instance
func NewServiceTypeRepository(db *database.DB) grooming.ServiceTypeRepository {
	return &serviceTypeRepositoryImpl{db: db}
}

const serviceTypeColumns = `id, shop_id, name, description, default_price, is_active, created_at, updated_at`

func scanServiceType(row pgx.Row) (grooming.ServiceType, error) {
	var t grooming.ServiceType
	err := row.Scan(
		&t.ID, &t.ShopID, &t.Name, &t.Description, &t.DefaultPrice,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements grooming.ServiceTypeRepository.
func (r *serviceTypeRepositoryImpl) Create(ctx context.Context, t grooming.ServiceType) (grooming.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO grooming_service_types (shop_id, name, description, default_price, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + serviceTypeColumns

	created, err := scanServiceType(q.QueryRow(ctx, query,
		t.ShopID, t.Name, t.Description, t.DefaultPrice, t.IsActive,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return grooming.ServiceType{}, grooming.ErrNameExists
		}
		return grooming.ServiceType{}, fmt.Errorf("failed to create grooming service type: %w", err)
	}

	return created, nil
}

// GetByID implements grooming.ServiceTypeRepository.
func (r *serviceTypeRepositoryImpl) GetByID(ctx context.Context, id string) (grooming.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + serviceTypeColumns + ` FROM grooming_service_types WHERE id = $1`

	t, err := scanServiceType(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return grooming.ServiceType{}, grooming.ErrServiceTypeNotFound
		}
		return grooming.ServiceType{}, fmt.Errorf("failed to get grooming service type: %w", err)
	}

	return t, nil
}

// GetByShopAndName implements grooming.ServiceTypeRepository.
func (r *serviceTypeRepositoryImpl) GetByShopAndName(ctx context.Context, shopID, name string) (grooming.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + serviceTypeColumns + ` FROM grooming_service_types WHERE shop_id = $1 AND LOWER(name) = LOWER($2)`

	t, err := scanServiceType(q.QueryRow(ctx, query, shopID, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return grooming.ServiceType{}, grooming.ErrServiceTypeNotFound
		}
		return grooming.ServiceType{}, fmt.Errorf("failed to get grooming service type by name: %w", err)
	}

	return t, nil
}

// ListByShop implements grooming.ServiceTypeRepository.
func (r *serviceTypeRepositoryImpl) ListByShop(ctx context.Context, shopID string, includeInactive bool) ([]grooming.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + serviceTypeColumns + `
		FROM grooming_service_types
		WHERE shop_id = $1 AND (is_active = true OR $2)
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, shopID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list grooming service types: %w", err)
	}
	defer rows.Close()

	var types []grooming.ServiceType
	for rows.Next() {
		t, err := scanServiceType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grooming service type: %w", err)
		}
		types = append(types, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return types, nil
}

// Update implements grooming.ServiceTypeRepository.
func (r *serviceTypeRepositoryImpl) Update(ctx context.Context, t grooming.ServiceType) (grooming.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE grooming_service_types
		SET name = $1, description = $2, default_price = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + serviceTypeColumns

	updated, err := scanServiceType(q.QueryRow(ctx, query, t.Name, t.Description, t.DefaultPrice, t.ID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return grooming.ServiceType{}, grooming.ErrServiceTypeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return grooming.ServiceType{}, grooming.ErrNameExists
		}
		return grooming.ServiceType{}, fmt.Errorf("failed to update grooming service type: %w", err)
	}

	return updated, nil
}

// SetActive implements grooming.ServiceTypeRepository.
func (r *serviceTypeRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE grooming_service_types
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, active, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return grooming.ErrServiceTypeNotFound
		}
		return fmt.Errorf("failed to update grooming service type state: %w", err)
	}

	return nil
}
