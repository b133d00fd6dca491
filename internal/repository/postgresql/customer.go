package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/groomday/groomday-backend-go/internal/domain/customer"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type customerRepositoryImpl struct {
	db *database.DB
}

// NewCustomerRepository creates a new customer repository instance
func NewCustomerRepository(db *database.DB) customer.CustomerRepository {
	return &customerRepositoryImpl{db: db}
}

const customerColumns = `id, shop_id, name, phone, email, memo, created_at, updated_at`

func scanCustomer(row pgx.Row) (customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(&c.ID, &c.ShopID, &c.Name, &c.Phone, &c.Email, &c.Memo, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Create implements customer.CustomerRepository.
func (r *customerRepositoryImpl) Create(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO customers (shop_id, name, phone, email, memo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns

	created, err := scanCustomer(q.QueryRow(ctx, query, c.ShopID, c.Name, c.Phone, c.Email, c.Memo))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return customer.Customer{}, customer.ErrPhoneExists
		}
		return customer.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return created, nil
}

// GetByID implements customer.CustomerRepository.
func (r *customerRepositoryImpl) GetByID(ctx context.Context, id string) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND deleted_at IS NULL`

	c, err := scanCustomer(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}

// List implements customer.CustomerRepository.
func (r *customerRepositoryImpl) List(ctx context.Context, shopID, search string, limit, offset int) ([]customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE shop_id = $1 AND deleted_at IS NULL
			AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR phone LIKE '%' || $2 || '%')
		ORDER BY name ASC
		LIMIT $3 OFFSET $4
	`

	rows, err := q.Query(ctx, query, shopID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return customers, nil
}

// Count implements customer.CustomerRepository.
func (r *customerRepositoryImpl) Count(ctx context.Context, shopID, search string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM customers
		WHERE shop_id = $1 AND deleted_at IS NULL
			AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR phone LIKE '%' || $2 || '%')
	`

	var count int64
	err := q.QueryRow(ctx, query, shopID, search).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return count, nil
}

// Update implements customer.CustomerRepository.
func (r *customerRepositoryImpl) Update(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, memo = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
		RETURNING ` + customerColumns

	updated, err := scanCustomer(q.QueryRow(ctx, query, c.Name, c.Phone, c.Email, c.Memo, c.ID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return customer.Customer{}, customer.ErrPhoneExists
		}
		return customer.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}

	return updated, nil
}

// Delete implements customer.CustomerRepository. Soft delete; appointment
// history keeps referencing the row.
func (r *customerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE customers
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return customer.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
