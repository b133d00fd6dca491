package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type memberRepositoryImpl struct {
	db *database.DB
}

// NewMemberRepository creates a new shop membership repository instance
func NewMemberRepository(db *database.DB) staff.MemberRepository {
	return &memberRepositoryImpl{db: db}
}

const memberColumns = `id, shop_id, user_id, role, is_active, joined_at, created_at, updated_at`

func scanMember(row pgx.Row) (staff.Member, error) {
	var m staff.Member
	err := row.Scan(&m.ID, &m.ShopID, &m.UserID, &m.Role, &m.IsActive, &m.JoinedAt, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// Create implements staff.MemberRepository.
func (r *memberRepositoryImpl) Create(ctx context.Context, m staff.Member) (staff.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shop_members (shop_id, user_id, role, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + memberColumns

	created, err := scanMember(q.QueryRow(ctx, query, m.ShopID, m.UserID, m.Role, m.IsActive))
	if err != nil {
		// 23505: unique (shop_id, user_id) violated by a concurrent join
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return staff.Member{}, staff.ErrAlreadyMember
		}
		return staff.Member{}, fmt.Errorf("failed to create shop member: %w", err)
	}

	return created, nil
}

// GetByID implements staff.MemberRepository.
func (r *memberRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + memberColumns + ` FROM shop_members WHERE id = $1`

	m, err := scanMember(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Member{}, staff.ErrMemberNotFound
		}
		return staff.Member{}, fmt.Errorf("failed to get shop member: %w", err)
	}

	return m, nil
}

// ExistsActive implements staff.MemberRepository.
func (r *memberRepositoryImpl) ExistsActive(ctx context.Context, shopID, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM shop_members
			WHERE shop_id = $1 AND user_id = $2 AND is_active = true
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, shopID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check shop membership: %w", err)
	}

	return exists, nil
}

// ListByShop implements staff.MemberRepository.
func (r *memberRepositoryImpl) ListByShop(ctx context.Context, shopID string) ([]staff.MemberWithUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			m.id, m.shop_id, m.user_id, m.role, m.is_active, m.joined_at, m.created_at, m.updated_at,
			u.name AS user_name, u.email AS user_email
		FROM shop_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.shop_id = $1
		ORDER BY m.joined_at ASC
	`

	rows, err := q.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shop members: %w", err)
	}
	defer rows.Close()

	var members []staff.MemberWithUser
	for rows.Next() {
		var m staff.MemberWithUser
		err := rows.Scan(
			&m.ID, &m.ShopID, &m.UserID, &m.Role, &m.IsActive, &m.JoinedAt, &m.CreatedAt, &m.UpdatedAt,
			&m.UserName, &m.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shop member: %w", err)
		}
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// Update implements staff.MemberRepository.
func (r *memberRepositoryImpl) Update(ctx context.Context, m staff.Member) (staff.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shop_members
		SET role = $1, is_active = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + memberColumns

	updated, err := scanMember(q.QueryRow(ctx, query, m.Role, m.IsActive, m.ID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Member{}, staff.ErrMemberNotFound
		}
		return staff.Member{}, fmt.Errorf("failed to update shop member: %w", err)
	}

	return updated, nil
}
