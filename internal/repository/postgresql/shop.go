package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/groomday/groomday-backend-go/internal/domain/shop"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shopRepositoryImpl struct {
	db *database.DB
}

// NewShopRepository creates a new shop repository instance
func NewShopRepository(db *database.DB) shop.ShopRepository {
	return &shopRepositoryImpl{db: db}
}

const shopColumns = `id, name, slug, phone, address, logo_url, created_at, updated_at`

func scanShop(row pgx.Row) (shop.Shop, error) {
	var s shop.Shop
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Phone, &s.Address, &s.LogoURL, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create implements shop.ShopRepository.
func (r *shopRepositoryImpl) Create(ctx context.Context, s shop.Shop) (shop.Shop, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shops (name, slug, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + shopColumns

	created, err := scanShop(q.QueryRow(ctx, query, s.Name, s.Slug, s.Phone, s.Address))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shop.Shop{}, shop.ErrSlugExists
		}
		return shop.Shop{}, fmt.Errorf("failed to create shop: %w", err)
	}

	return created, nil
}

// GetByID implements shop.ShopRepository.
func (r *shopRepositoryImpl) GetByID(ctx context.Context, id string) (shop.Shop, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`

	s, err := scanShop(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shop.Shop{}, shop.ErrShopNotFound
		}
		return shop.Shop{}, fmt.Errorf("failed to get shop by id: %w", err)
	}

	return s, nil
}

// GetBySlug implements shop.ShopRepository.
func (r *shopRepositoryImpl) GetBySlug(ctx context.Context, slug string) (shop.Shop, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shopColumns + ` FROM shops WHERE slug = $1`

	s, err := scanShop(q.QueryRow(ctx, query, slug))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shop.Shop{}, shop.ErrShopNotFound
		}
		return shop.Shop{}, fmt.Errorf("failed to get shop by slug: %w", err)
	}

	return s, nil
}

// Update implements shop.ShopRepository.
func (r *shopRepositoryImpl) Update(ctx context.Context, s shop.Shop) (shop.Shop, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shops
		SET name = $1, phone = $2, address = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + shopColumns

	updated, err := scanShop(q.QueryRow(ctx, query, s.Name, s.Phone, s.Address, s.ID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shop.Shop{}, shop.ErrShopNotFound
		}
		return shop.Shop{}, fmt.Errorf("failed to update shop: %w", err)
	}

	return updated, nil
}

// UpdateLogo implements shop.ShopRepository.
func (r *shopRepositoryImpl) UpdateLogo(ctx context.Context, id, logoURL string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shops
		SET logo_url = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, logoURL, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shop.ErrShopNotFound
		}
		return fmt.Errorf("failed to update shop logo: %w", err)
	}

	return nil
}
