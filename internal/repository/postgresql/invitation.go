package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/invitation"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type invitationRepositoryImpl struct {
	db *database.DB
}

// NewInvitationRepository creates a new invitation repository instance
func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

const invitationColumns = `id, shop_id, invited_by_user_id, email, token, role, status, expires_at, accepted_at, cancelled_at, created_at, updated_at`

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := row.Scan(
		&inv.ID, &inv.ShopID, &inv.InvitedByUserID, &inv.Email, &inv.Token,
		&inv.Role, &inv.Status, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CancelledAt,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

// Create implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitations (shop_id, invited_by_user_id, email, token, role, status, expires_at)
		VALUES ($1, $2, LOWER($3), $4, $5, $6, $7)
		RETURNING ` + invitationColumns

	created, err := scanInvitation(q.QueryRow(ctx, query,
		inv.ShopID, inv.InvitedByUserID, inv.Email, inv.Token, inv.Role, inv.Status, inv.ExpiresAt,
	))
	if err != nil {
		// 23505: partial unique index on pending (shop_id, lower(email))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return invitation.Invitation{}, invitation.ErrDuplicatePendingInvitation
		}
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	return created, nil
}

// GetByToken implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByToken(ctx context.Context, token string) (invitation.InvitationWithShop, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			i.id, i.shop_id, i.invited_by_user_id, i.email, i.token, i.role, i.status,
			i.expires_at, i.accepted_at, i.cancelled_at, i.created_at, i.updated_at,
			s.name AS shop_name, s.logo_url AS shop_logo,
			u.name AS inviter_name
		FROM invitations i
		JOIN shops s ON s.id = i.shop_id
		JOIN users u ON u.id = i.invited_by_user_id
		WHERE i.token = $1
	`

	var inv invitation.InvitationWithShop
	err := q.QueryRow(ctx, query, token).Scan(
		&inv.ID, &inv.ShopID, &inv.InvitedByUserID, &inv.Email, &inv.Token,
		&inv.Role, &inv.Status, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CancelledAt,
		&inv.CreatedAt, &inv.UpdatedAt,
		&inv.ShopName, &inv.ShopLogo, &inv.InviterName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.InvitationWithShop{}, invitation.ErrInvitationNotFound
		}
		return invitation.InvitationWithShop{}, fmt.Errorf("failed to get invitation by token: %w", err)
	}

	return inv, nil
}

// GetByID implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByID(ctx context.Context, id string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`

	inv, err := scanInvitation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

// ExistsPendingByEmail implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ExistsPendingByEmail(ctx context.Context, shopID, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM invitations
			WHERE shop_id = $1 AND LOWER(email) = LOWER($2) AND status = 'pending'
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, shopID, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending invitation: %w", err)
	}

	return exists, nil
}

// ListByShop implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ListByShop(ctx context.Context, shopID string) ([]invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE shop_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []invitation.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// MarkAccepted implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) MarkAccepted(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, `
		UPDATE invitations
		SET status = 'accepted', accepted_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`)
}

// MarkCancelled implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) MarkCancelled(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, `
		UPDATE invitations
		SET status = 'cancelled', cancelled_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`)
}

// MarkExpired implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) MarkExpired(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, `
		UPDATE invitations
		SET status = 'expired', updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`)
}

func (r *invitationRepositoryImpl) setStatus(ctx context.Context, id, query string) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, query, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to update invitation status: %w", err)
	}

	return nil
}

// UpdateToken implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) UpdateToken(ctx context.Context, id, newToken string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitations
		SET token = $1, expires_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, newToken, expiresAt, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to rotate invitation token: %w", err)
	}

	return nil
}

// Delete implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM invitations WHERE id = $1`

	_, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return nil
}
