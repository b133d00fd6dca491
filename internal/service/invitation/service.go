package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/invitation"
	"github.com/groomday/groomday-backend-go/internal/domain/shop"
	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/groomday/groomday-backend-go/internal/domain/user"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/groomday/groomday-backend-go/internal/pkg/email"
	"github.com/groomday/groomday-backend-go/internal/pkg/token"
)

type InvitationServiceImpl struct {
	tx          database.TxManager
	expiry      time.Duration
	frontendURL string
	invitation.InvitationRepository
	staff.MemberRepository
	user.UserRepository
	shop.ShopRepository
	email.EmailService
}

func NewInvitationService(
	tx database.TxManager,
	expiry time.Duration,
	frontendURL string,
	invitationRepository invitation.InvitationRepository,
	memberRepository staff.MemberRepository,
	userRepository user.UserRepository,
	shopRepository shop.ShopRepository,
	emailService email.EmailService,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		tx:                   tx,
		expiry:               expiry,
		frontendURL:          frontendURL,
		InvitationRepository: invitationRepository,
		MemberRepository:     memberRepository,
		UserRepository:       userRepository,
		ShopRepository:       shopRepository,
		EmailService:         emailService,
	}
}

func (s *InvitationServiceImpl) invitationLink(tok string) string {
	return fmt.Sprintf("%s/invitations/%s", strings.TrimRight(s.frontendURL, "/"), tok)
}

// Create implements invitation.InvitationService.
func (s *InvitationServiceImpl) Create(ctx context.Context, shopID, inviterUserID string, req invitation.CreateRequest) (invitation.CreateResponse, error) {
	inviteEmail := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.InvitationRepository.ExistsPendingByEmail(ctx, shopID, inviteEmail)
	if err != nil {
		return invitation.CreateResponse{}, err
	}
	if exists {
		return invitation.CreateResponse{}, invitation.ErrDuplicatePendingInvitation
	}

	// An account already holding an active membership cannot be invited again
	existing, err := s.UserRepository.GetByEmail(ctx, inviteEmail)
	if err == nil {
		isMember, err := s.MemberRepository.ExistsActive(ctx, shopID, existing.ID)
		if err != nil {
			return invitation.CreateResponse{}, err
		}
		if isMember {
			return invitation.CreateResponse{}, invitation.ErrAlreadyMember
		}
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return invitation.CreateResponse{}, err
	}

	// Shop and inviter must resolve before any row exists; a failure here
	// must not leave a pending invitation behind
	shopData, err := s.ShopRepository.GetByID(ctx, shopID)
	if err != nil {
		return invitation.CreateResponse{}, err
	}
	inviter, err := s.UserRepository.GetByID(ctx, inviterUserID)
	if err != nil {
		return invitation.CreateResponse{}, err
	}

	tok, err := token.New()
	if err != nil {
		return invitation.CreateResponse{}, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	created, err := s.InvitationRepository.Create(ctx, invitation.Invitation{
		ShopID:          shopID,
		InvitedByUserID: inviterUserID,
		Email:           inviteEmail,
		Token:           tok,
		Role:            req.Role,
		Status:          invitation.StatusPending,
		ExpiresAt:       time.Now().Add(s.expiry),
	})
	if err != nil {
		return invitation.CreateResponse{}, err
	}

	err = s.EmailService.SendInvitation(
		created.Email,
		shopData.Name,
		inviter.Name,
		created.Role,
		s.invitationLink(created.Token),
		created.ExpiresAt.Format("January 2, 2006"),
	)
	if err != nil {
		// Undeliverable invitations are not kept around
		if delErr := s.InvitationRepository.Delete(ctx, created.ID); delErr != nil {
			slog.Error("failed to roll back invitation after email failure", "invitation_id", created.ID, "error", delErr)
		}
		return invitation.CreateResponse{}, invitation.ErrEmailDeliveryFailed
	}

	return invitation.CreateResponse{
		ID:        created.ID,
		Email:     created.Email,
		Role:      created.Role,
		Status:    string(created.Status),
		ExpiresAt: created.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// GetByToken implements invitation.InvitationService.
func (s *InvitationServiceImpl) GetByToken(ctx context.Context, tok string) (invitation.DetailResponse, error) {
	inv, err := s.InvitationRepository.GetByToken(ctx, tok)
	if err != nil {
		return invitation.DetailResponse{}, err
	}

	if err := s.checkViewable(ctx, &inv.Invitation); err != nil {
		return invitation.DetailResponse{}, err
	}

	return invitation.DetailResponse{
		Email: inv.Email,
		Role:  inv.Role,
		Shop: invitation.ShopSummary{
			ID:      inv.ShopID,
			Name:    inv.ShopName,
			LogoURL: inv.ShopLogo,
		},
		InviterName: inv.InviterName,
		ExpiresAt:   inv.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// Accept implements invitation.InvitationService. The membership row, the
// user's primary-shop pointer, and the invitation status flip commit together.
func (s *InvitationServiceImpl) Accept(ctx context.Context, tok, userID, userEmail string) (invitation.AcceptResponse, error) {
	inv, err := s.InvitationRepository.GetByToken(ctx, tok)
	if err != nil {
		return invitation.AcceptResponse{}, err
	}

	if err := s.checkViewable(ctx, &inv.Invitation); err != nil {
		return invitation.AcceptResponse{}, err
	}

	if !strings.EqualFold(inv.Email, userEmail) {
		return invitation.AcceptResponse{}, invitation.ErrEmailMismatch
	}

	isMember, err := s.MemberRepository.ExistsActive(ctx, inv.ShopID, userID)
	if err != nil {
		return invitation.AcceptResponse{}, err
	}
	if isMember {
		// Close out the invitation so it cannot linger as pending
		if markErr := s.InvitationRepository.MarkAccepted(ctx, inv.ID); markErr != nil {
			return invitation.AcceptResponse{}, markErr
		}
		return invitation.AcceptResponse{}, invitation.ErrAlreadyMember
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.MemberRepository.Create(txCtx, staff.Member{
			ShopID:   inv.ShopID,
			UserID:   userID,
			Role:     staff.Role(inv.Role),
			IsActive: true,
		})
		if err != nil {
			if errors.Is(err, staff.ErrAlreadyMember) {
				return invitation.ErrAlreadyMember
			}
			return err
		}

		userData, err := s.UserRepository.GetByID(txCtx, userID)
		if err != nil {
			return err
		}
		// The first shop a user joins becomes their primary shop
		if userData.ShopID == nil {
			if err := s.UserRepository.AssignShop(txCtx, userID, inv.ShopID, user.Role(inv.Role)); err != nil {
				return err
			}
		}

		return s.InvitationRepository.MarkAccepted(txCtx, inv.ID)
	})
	if err != nil {
		return invitation.AcceptResponse{}, err
	}

	return invitation.AcceptResponse{
		ShopID:   inv.ShopID,
		ShopName: inv.ShopName,
		Role:     inv.Role,
	}, nil
}

// Cancel implements invitation.InvitationService.
func (s *InvitationServiceImpl) Cancel(ctx context.Context, shopID, invitationID string) error {
	inv, err := s.getShopInvitation(ctx, shopID, invitationID)
	if err != nil {
		return err
	}
	if inv.Status != invitation.StatusPending {
		return invitation.ErrInvalidState
	}

	return s.InvitationRepository.MarkCancelled(ctx, inv.ID)
}

// Resend implements invitation.InvitationService.
func (s *InvitationServiceImpl) Resend(ctx context.Context, shopID, invitationID string) (invitation.ResendResponse, error) {
	inv, err := s.getShopInvitation(ctx, shopID, invitationID)
	if err != nil {
		return invitation.ResendResponse{}, err
	}
	// Stale-but-still-pending rows are resendable: the fresh expiry revives
	// them before the lazy expired transition ever lands
	if inv.Status != invitation.StatusPending {
		return invitation.ResendResponse{}, invitation.ErrInvalidState
	}

	newToken, err := token.New()
	if err != nil {
		return invitation.ResendResponse{}, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	expiresAt := time.Now().Add(s.expiry)
	if err := s.InvitationRepository.UpdateToken(ctx, inv.ID, newToken, expiresAt); err != nil {
		return invitation.ResendResponse{}, err
	}

	shopData, err := s.ShopRepository.GetByID(ctx, shopID)
	if err != nil {
		return invitation.ResendResponse{}, err
	}
	inviter, err := s.UserRepository.GetByID(ctx, inv.InvitedByUserID)
	if err != nil {
		return invitation.ResendResponse{}, err
	}

	err = s.EmailService.SendInvitation(
		inv.Email,
		shopData.Name,
		inviter.Name,
		inv.Role,
		s.invitationLink(newToken),
		expiresAt.Format("January 2, 2006"),
	)
	if err != nil {
		// The rotated token and expiry stay in place; the old link is already
		// dead, so reverting would only resurrect it.
		return invitation.ResendResponse{}, invitation.ErrEmailDeliveryFailed
	}

	return invitation.ResendResponse{ExpiresAt: expiresAt.Format(time.RFC3339)}, nil
}

// ListByShop implements invitation.InvitationService.
func (s *InvitationServiceImpl) ListByShop(ctx context.Context, shopID string) ([]invitation.ListItem, error) {
	invitations, err := s.InvitationRepository.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	items := make([]invitation.ListItem, 0, len(invitations))
	for _, inv := range invitations {
		status := inv.Status
		// Listings show expired pending invitations as expired without
		// waiting for the lazy status flip
		if status == invitation.StatusPending && inv.IsExpired() {
			status = invitation.StatusExpired
		}
		items = append(items, invitation.ListItem{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      inv.Role,
			Status:    string(status),
			ExpiresAt: inv.ExpiresAt.Format(time.RFC3339),
			CreatedAt: inv.CreatedAt.Format(time.RFC3339),
		})
	}
	return items, nil
}

// checkViewable rejects consumed invitations and persists the expired status
// on the first read past expiry.
func (s *InvitationServiceImpl) checkViewable(ctx context.Context, inv *invitation.Invitation) error {
	switch inv.Status {
	case invitation.StatusAccepted:
		return invitation.ErrInvitationAlreadyAccepted
	case invitation.StatusCancelled:
		return invitation.ErrInvitationAlreadyProcessed
	case invitation.StatusExpired:
		return invitation.ErrInvitationExpired
	}

	if inv.IsExpired() {
		if err := s.InvitationRepository.MarkExpired(ctx, inv.ID); err != nil {
			return err
		}
		inv.Status = invitation.StatusExpired
		return invitation.ErrInvitationExpired
	}
	return nil
}

func (s *InvitationServiceImpl) getShopInvitation(ctx context.Context, shopID, invitationID string) (invitation.Invitation, error) {
	inv, err := s.InvitationRepository.GetByID(ctx, invitationID)
	if err != nil {
		return invitation.Invitation{}, err
	}
	if inv.ShopID != shopID {
		return invitation.Invitation{}, invitation.ErrInvitationNotFound
	}
	return inv, nil
}
