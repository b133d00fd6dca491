package postgresql

import (
	"context"
	"fmt"

	"github.com/groomday/groomday-backend-go/internal/domain/customer"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dogRepositoryImpl struct {
	db *database.DB
}

// NewDogRepository creates a new dog repository instance
func NewDogRepository(db *database.DB) customer.DogRepository {
	return &dogRepositoryImpl{db: db}
}

const dogColumns = `id, shop_id, customer_id, name, breed, weight_kg, birth_date, sex, photo_url, memo, created_at, updated_at`

func scanDog(row pgx.Row) (customer.Dog, error) {
	var d customer.Dog
	err := row.Scan(
		&d.ID, &d.ShopID, &d.CustomerID, &d.Name, &d.Breed, &d.WeightKg,
		&d.BirthDate, &d.Sex, &d.PhotoURL, &d.Memo, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// Create implements customer.DogRepository.
func (r *dogRepositoryImpl) Create(ctx context.Context, d customer.Dog) (customer.Dog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO dogs (shop_id, customer_id, name, breed, weight_kg, birth_date, sex, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + dogColumns

	created, err := scanDog(q.QueryRow(ctx, query,
		d.ShopID, d.CustomerID, d.Name, d.Breed, d.WeightKg, d.BirthDate, d.Sex, d.Memo,
	))
	if err != nil {
		return customer.Dog{}, fmt.Errorf("failed to create dog: %w", err)
	}

	return created, nil
}

// GetByID implements customer.DogRepository.
func (r *dogRepositoryImpl) GetByID(ctx context.Context, id string) (customer.Dog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dogColumns + ` FROM dogs WHERE id = $1 AND deleted_at IS NULL`

	d, err := scanDog(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return customer.Dog{}, customer.ErrDogNotFound
		}
		return customer.Dog{}, fmt.Errorf("failed to get dog: %w", err)
	}

	return d, nil
}

// ListByCustomer implements customer.DogRepository.
func (r *dogRepositoryImpl) ListByCustomer(ctx context.Context, customerID string) ([]customer.Dog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dogColumns + ` FROM dogs WHERE customer_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dogs: %w", err)
	}
	defer rows.Close()

	var dogs []customer.Dog
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dog: %w", err)
		}
		dogs = append(dogs, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return dogs, nil
}

// Update implements customer.DogRepository.
func (r *dogRepositoryImpl) Update(ctx context.Context, d customer.Dog) (customer.Dog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE dogs
		SET name = $1, breed = $2, weight_kg = $3, birth_date = $4, sex = $5, memo = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
		RETURNING ` + dogColumns

	updated, err := scanDog(q.QueryRow(ctx, query,
		d.Name, d.Breed, d.WeightKg, d.BirthDate, d.Sex, d.Memo, d.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return customer.Dog{}, customer.ErrDogNotFound
		}
		return customer.Dog{}, fmt.Errorf("failed to update dog: %w", err)
	}

	return updated, nil
}

// UpdatePhoto implements customer.DogRepository.
func (r *dogRepositoryImpl) UpdatePhoto(ctx context.Context, id, photoURL string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE dogs
		SET photo_url = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, photoURL, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return customer.ErrDogNotFound
		}
		return fmt.Errorf("failed to update dog photo: %w", err)
	}

	return nil
}

// Delete implements customer.DogRepository.
func (r *dogRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE dogs
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return customer.ErrDogNotFound
		}
		return fmt.Errorf("failed to delete dog: %w", err)
	}

	return nil
}
