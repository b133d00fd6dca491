package invitation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/invitation"
	"github.com/groomday/groomday-backend-go/internal/domain/shop"
	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/groomday/groomday-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeInvitationRepo struct {
	byID        map[string]invitation.Invitation
	shopName    string
	inviterName string
	nextID      int
	deleted     []string
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{
		byID:        map[string]invitation.Invitation{},
		shopName:    "Happy Paws",
		inviterName: "Owner One",
	}
}

func (r *fakeInvitationRepo) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	r.nextID++
	inv.ID = fmt.Sprintf("inv-%d", r.nextID)
	inv.CreatedAt = time.Now()
	r.byID[inv.ID] = inv
	return inv, nil
}

func (r *fakeInvitationRepo) GetByToken(ctx context.Context, token string) (invitation.InvitationWithShop, error) {
	for _, inv := range r.byID {
		if inv.Token == token {
			return invitation.InvitationWithShop{
				Invitation:  inv,
				ShopName:    r.shopName,
				InviterName: r.inviterName,
			}, nil
		}
	}
	return invitation.InvitationWithShop{}, invitation.ErrInvitationNotFound
}

func (r *fakeInvitationRepo) GetByID(ctx context.Context, id string) (invitation.Invitation, error) {
	inv, ok := r.byID[id]
	if !ok {
		return invitation.Invitation{}, invitation.ErrInvitationNotFound
	}
	return inv, nil
}

func (r *fakeInvitationRepo) ExistsPendingByEmail(ctx context.Context, shopID, email string) (bool, error) {
	for _, inv := range r.byID {
		if inv.ShopID == shopID && inv.Status == invitation.StatusPending && strings.EqualFold(inv.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInvitationRepo) ListByShop(ctx context.Context, shopID string) ([]invitation.Invitation, error) {
	var out []invitation.Invitation
	for _, inv := range r.byID {
		if inv.ShopID == shopID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) setStatus(id string, status invitation.Status) error {
	inv, ok := r.byID[id]
	if !ok {
		return invitation.ErrInvitationNotFound
	}
	inv.Status = status
	r.byID[id] = inv
	return nil
}

func (r *fakeInvitationRepo) MarkAccepted(ctx context.Context, id string) error {
	return r.setStatus(id, invitation.StatusAccepted)
}

func (r *fakeInvitationRepo) MarkCancelled(ctx context.Context, id string) error {
	return r.setStatus(id, invitation.StatusCancelled)
}

func (r *fakeInvitationRepo) MarkExpired(ctx context.Context, id string) error {
	return r.setStatus(id, invitation.StatusExpired)
}

func (r *fakeInvitationRepo) UpdateToken(ctx context.Context, id, newToken string, expiresAt time.Time) error {
	inv, ok := r.byID[id]
	if !ok {
		return invitation.ErrInvitationNotFound
	}
	inv.Token = newToken
	inv.ExpiresAt = expiresAt
	r.byID[id] = inv
	return nil
}

func (r *fakeInvitationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return invitation.ErrInvitationNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeMemberRepo struct {
	members map[string]staff.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: map[string]staff.Member{}}
}

func memberKey(shopID, userID string) string { return shopID + "|" + userID }

func (r *fakeMemberRepo) Create(ctx context.Context, m staff.Member) (staff.Member, error) {
	key := memberKey(m.ShopID, m.UserID)
	if _, ok := r.members[key]; ok {
		return staff.Member{}, staff.ErrAlreadyMember
	}
	m.ID = "member-" + m.UserID
	m.JoinedAt = time.Now()
	r.members[key] = m
	return m, nil
}

func (r *fakeMemberRepo) GetByID(ctx context.Context, id string) (staff.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return staff.Member{}, staff.ErrMemberNotFound
}

func (r *fakeMemberRepo) ExistsActive(ctx context.Context, shopID, userID string) (bool, error) {
	m, ok := r.members[memberKey(shopID, userID)]
	return ok && m.IsActive, nil
}

func (r *fakeMemberRepo) ListByShop(ctx context.Context, shopID string) ([]staff.MemberWithUser, error) {
	return nil, nil
}

func (r *fakeMemberRepo) Update(ctx context.Context, m staff.Member) (staff.Member, error) {
	r.members[memberKey(m.ShopID, m.UserID)] = m
	return m, nil
}

type fakeUserRepo struct {
	byID        map[string]user.User
	assignments map[string]string // userID -> shopID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]user.User{}, assignments: map[string]string{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	r.byID[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) AssignShop(ctx context.Context, userID, shopID string, role user.Role) error {
	u, ok := r.byID[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.ShopID = &shopID
	u.Role = role
	r.byID[userID] = u
	r.assignments[userID] = shopID
	return nil
}

type fakeShopRepo struct {
	shop shop.Shop
}

func (r *fakeShopRepo) Create(ctx context.Context, s shop.Shop) (shop.Shop, error) { return s, nil }

func (r *fakeShopRepo) GetByID(ctx context.Context, id string) (shop.Shop, error) {
	if r.shop.ID != id {
		return shop.Shop{}, shop.ErrShopNotFound
	}
	return r.shop, nil
}

func (r *fakeShopRepo) GetBySlug(ctx context.Context, slug string) (shop.Shop, error) {
	return shop.Shop{}, shop.ErrShopNotFound
}

func (r *fakeShopRepo) Update(ctx context.Context, s shop.Shop) (shop.Shop, error) { return s, nil }

func (r *fakeShopRepo) UpdateLogo(ctx context.Context, id, logoURL string) error { return nil }

type sentInvitationEmail struct {
	To   string
	Link string
}

type fakeEmailService struct {
	sendErr error
	sent    []sentInvitationEmail
}

func (f *fakeEmailService) SendInvitation(to, shopName, inviterName, role, invitationLink, expiresAt string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentInvitationEmail{To: to, Link: invitationLink})
	return nil
}

// ===== FIXTURE =====

type invitationFixture struct {
	service  invitation.InvitationService
	invRepo  *fakeInvitationRepo
	members  *fakeMemberRepo
	users    *fakeUserRepo
	mail     *fakeEmailService
	shopID   string
	ownerID  string
}

func newInvitationFixture() *invitationFixture {
	invRepo := newFakeInvitationRepo()
	members := newFakeMemberRepo()
	users := newFakeUserRepo()
	mail := &fakeEmailService{}

	shopID := "shop-1"
	ownerID := "user-owner"
	users.byID[ownerID] = user.User{ID: ownerID, ShopID: &shopID, Email: "owner@example.com", Name: "Owner One", Role: user.RoleOwner}
	shops := &fakeShopRepo{shop: shop.Shop{ID: shopID, Name: "Happy Paws", Slug: "happy-paws"}}

	svc := NewInvitationService(&fakeTxManager{}, 7*24*time.Hour, "https://app.groomday.test/", invRepo, members, users, shops, mail)
	return &invitationFixture{
		service: svc,
		invRepo: invRepo,
		members: members,
		users:   users,
		mail:    mail,
		shopID:  shopID,
		ownerID: ownerID,
	}
}

func (f *invitationFixture) seedInvitation(email string, status invitation.Status, expiresAt time.Time) invitation.Invitation {
	f.invRepo.nextID++
	inv := invitation.Invitation{
		ID:              fmt.Sprintf("inv-%d", f.invRepo.nextID),
		ShopID:          f.shopID,
		InvitedByUserID: f.ownerID,
		Email:           email,
		Token:           fmt.Sprintf("token-%d", f.invRepo.nextID),
		Role:            string(staff.RoleStaff),
		Status:          status,
		ExpiresAt:       expiresAt,
		CreatedAt:       time.Now(),
	}
	f.invRepo.byID[inv.ID] = inv
	return inv
}

// ===== CREATE =====

func TestInvitationService_Create_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()

	resp, err := f.service.Create(ctx, f.shopID, f.ownerID, invitation.CreateRequest{
		Email: "  Groomer@Example.com ",
		Role:  string(staff.RoleStaff),
	})

	require.NoError(t, err)
	assert.Equal(t, "groomer@example.com", resp.Email)
	assert.Equal(t, string(invitation.StatusPending), resp.Status)
	assert.NotEmpty(t, resp.ID)

	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "groomer@example.com", f.mail.sent[0].To)

	stored := f.invRepo.byID[resp.ID]
	assert.Contains(t, f.mail.sent[0].Link, stored.Token)
	assert.True(t, strings.HasPrefix(f.mail.sent[0].Link, "https://app.groomday.test/invitations/"))
}

func TestInvitationService_Create_DuplicatePending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))

	_, err := f.service.Create(ctx, f.shopID, f.ownerID, invitation.CreateRequest{
		Email: "GROOMER@example.com",
		Role:  string(staff.RoleStaff),
	})

	assert.ErrorIs(t, err, invitation.ErrDuplicatePendingInvitation)
}

func TestInvitationService_Create_ConsumedInvitationDoesNotBlock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	f.seedInvitation("groomer@example.com", invitation.StatusCancelled, time.Now().Add(time.Hour))

	_, err := f.service.Create(ctx, f.shopID, f.ownerID, invitation.CreateRequest{
		Email: "groomer@example.com",
		Role:  string(staff.RoleStaff),
	})

	assert.NoError(t, err)
}

func TestInvitationService_Create_AlreadyActiveMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()

	f.users.byID["user-2"] = user.User{ID: "user-2", Email: "groomer@example.com", Name: "Groomer"}
	_, err := f.members.Create(ctx, staff.Member{ShopID: f.shopID, UserID: "user-2", Role: staff.RoleStaff, IsActive: true})
	require.NoError(t, err)

	_, err = f.service.Create(ctx, f.shopID, f.ownerID, invitation.CreateRequest{
		Email: "groomer@example.com",
		Role:  string(staff.RoleStaff),
	})

	assert.ErrorIs(t, err, invitation.ErrAlreadyMember)
}

func TestInvitationService_Create_InactiveMemberCanBeReinvited(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()

	f.users.byID["user-2"] = user.User{ID: "user-2", Email: "groomer@example.com", Name: "Groomer"}
	_, err := f.members.Create(ctx, staff.Member{ShopID: f.shopID, UserID: "user-2", Role: staff.RoleStaff, IsActive: false})
	require.NoError(t, err)

	_, err = f.service.Create(ctx, f.shopID, f.ownerID, invitation.CreateRequest{
		Email: "groomer@example.com",
		Role:  string(staff.RoleStaff),
	})

	assert.NoError(t, err)
}

func TestInvitationService_Create_UnknownShopLeavesNoRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()

	_, err := f.service.Create(ctx, "shop-missing", f.ownerID, invitation.CreateRequest{
		Email: "groomer@example.com",
		Role:  string(staff.RoleStaff),
	})

	assert.ErrorIs(t, err, shop.ErrShopNotFound)
	// The row must never have existed, not been created and compensated away
	assert.Empty(t, f.invRepo.byID)
	assert.Empty(t, f.invRepo.deleted)
	assert.Empty(t, f.mail.sent)
}

func TestInvitationService_Create_UnknownInviterLeavesNoRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()

	_, err := f.service.Create(ctx, f.shopID, "user-missing", invitation.CreateRequest{
		Email: "groomer@example.com",
		Role:  string(staff.RoleStaff),
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Empty(t, f.invRepo.byID)
	assert.Empty(t, f.invRepo.deleted)
	assert.Empty(t, f.mail.sent)
}

func TestInvitationService_Create_EmailFailureRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	f.mail.sendErr = errors.New("smtp unavailable")

	_, err := f.service.Create(ctx, f.shopID, f.ownerID, invitation.CreateRequest{
		Email: "groomer@example.com",
		Role:  string(staff.RoleStaff),
	})

	assert.ErrorIs(t, err, invitation.ErrEmailDeliveryFailed)
	assert.Len(t, f.invRepo.deleted, 1)
	assert.Empty(t, f.invRepo.byID)
}

// ===== GET BY TOKEN =====

func TestInvitationService_GetByToken_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))

	resp, err := f.service.GetByToken(ctx, inv.Token)

	require.NoError(t, err)
	assert.Equal(t, "groomer@example.com", resp.Email)
	assert.Equal(t, "Happy Paws", resp.Shop.Name)
	assert.Equal(t, "Owner One", resp.InviterName)
}

func TestInvitationService_GetByToken_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()

	_, err := f.service.GetByToken(ctx, "no-such-token")

	assert.ErrorIs(t, err, invitation.ErrInvitationNotFound)
}

func TestInvitationService_GetByToken_LazyExpiryPersisted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(-time.Minute))

	_, err := f.service.GetByToken(ctx, inv.Token)

	assert.ErrorIs(t, err, invitation.ErrInvitationExpired)
	assert.Equal(t, invitation.StatusExpired, f.invRepo.byID[inv.ID].Status)
}

// ===== ACCEPT =====

func TestInvitationService_Accept_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))
	f.users.byID["user-2"] = user.User{ID: "user-2", Email: "groomer@example.com", Name: "Groomer", Role: user.RolePending}

	resp, err := f.service.Accept(ctx, inv.Token, "user-2", "groomer@example.com")

	require.NoError(t, err)
	assert.Equal(t, f.shopID, resp.ShopID)
	assert.Equal(t, "Happy Paws", resp.ShopName)
	assert.Equal(t, string(staff.RoleStaff), resp.Role)

	isMember, err := f.members.ExistsActive(ctx, f.shopID, "user-2")
	require.NoError(t, err)
	assert.True(t, isMember)
	assert.Equal(t, invitation.StatusAccepted, f.invRepo.byID[inv.ID].Status)
	// First shop joined becomes the primary shop
	assert.Equal(t, f.shopID, f.users.assignments["user-2"])
}

func TestInvitationService_Accept_EmailComparisonIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))
	f.users.byID["user-2"] = user.User{ID: "user-2", Email: "Groomer@Example.COM", Name: "Groomer"}

	_, err := f.service.Accept(ctx, inv.Token, "user-2", "Groomer@Example.COM")

	assert.NoError(t, err)
}

func TestInvitationService_Accept_EmailMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))
	f.users.byID["user-2"] = user.User{ID: "user-2", Email: "someoneelse@example.com", Name: "Other"}

	_, err := f.service.Accept(ctx, inv.Token, "user-2", "someoneelse@example.com")

	assert.ErrorIs(t, err, invitation.ErrEmailMismatch)
	assert.Equal(t, invitation.StatusPending, f.invRepo.byID[inv.ID].Status)
}

func TestInvitationService_Accept_AlreadyAccepted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusAccepted, time.Now().Add(time.Hour))
	f.users.byID["user-2"] = user.User{ID: "user-2", Email: "groomer@example.com", Name: "Groomer"}

	_, err := f.service.Accept(ctx, inv.Token, "user-2", "groomer@example.com")

	assert.ErrorIs(t, err, invitation.ErrInvitationAlreadyAccepted)
}

func TestInvitationService_Accept_ExistingMemberClosesInvitation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))
	f.users.byID["user-2"] = user.User{ID: "user-2", Email: "groomer@example.com", Name: "Groomer"}
	_, err := f.members.Create(ctx, staff.Member{ShopID: f.shopID, UserID: "user-2", Role: staff.RoleStaff, IsActive: true})
	require.NoError(t, err)

	_, err = f.service.Accept(ctx, inv.Token, "user-2", "groomer@example.com")

	assert.ErrorIs(t, err, invitation.ErrAlreadyMember)
	assert.Equal(t, invitation.StatusAccepted, f.invRepo.byID[inv.ID].Status)
}

func TestInvitationService_Accept_KeepsExistingPrimaryShop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))
	otherShop := "shop-other"
	f.users.byID["user-2"] = user.User{ID: "user-2", ShopID: &otherShop, Email: "groomer@example.com", Name: "Groomer", Role: user.RoleStaff}

	_, err := f.service.Accept(ctx, inv.Token, "user-2", "groomer@example.com")

	require.NoError(t, err)
	_, assigned := f.users.assignments["user-2"]
	assert.False(t, assigned)
	assert.Equal(t, otherShop, *f.users.byID["user-2"].ShopID)
}

// ===== CANCEL =====

func TestInvitationService_Cancel_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))

	err := f.service.Cancel(ctx, f.shopID, inv.ID)

	require.NoError(t, err)
	assert.Equal(t, invitation.StatusCancelled, f.invRepo.byID[inv.ID].Status)
}

func TestInvitationService_Cancel_NonPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusAccepted, time.Now().Add(time.Hour))

	err := f.service.Cancel(ctx, f.shopID, inv.ID)

	assert.ErrorIs(t, err, invitation.ErrInvalidState)
}

func TestInvitationService_Cancel_OtherShopInvitation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))

	err := f.service.Cancel(ctx, "shop-other", inv.ID)

	assert.ErrorIs(t, err, invitation.ErrInvitationNotFound)
}

// ===== RESEND =====

func TestInvitationService_Resend_RotatesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	oldExpiry := time.Now().Add(time.Hour)
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, oldExpiry)

	resp, err := f.service.Resend(ctx, f.shopID, inv.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ExpiresAt)

	stored := f.invRepo.byID[inv.ID]
	assert.NotEqual(t, inv.Token, stored.Token)
	assert.True(t, stored.ExpiresAt.After(oldExpiry))

	require.Len(t, f.mail.sent, 1)
	assert.Contains(t, f.mail.sent[0].Link, stored.Token)
}

func TestInvitationService_Resend_RevivesStalePending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(-time.Minute))

	_, err := f.service.Resend(ctx, f.shopID, inv.ID)

	require.NoError(t, err)
	stored := f.invRepo.byID[inv.ID]
	assert.Equal(t, invitation.StatusPending, stored.Status)
	assert.False(t, stored.IsExpired())
	require.Len(t, f.mail.sent, 1)
}

func TestInvitationService_Resend_TerminalStates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()

	for _, status := range []invitation.Status{
		invitation.StatusAccepted, invitation.StatusCancelled, invitation.StatusExpired,
	} {
		inv := f.seedInvitation(fmt.Sprintf("%s@example.com", status), status, time.Now().Add(time.Hour))
		_, err := f.service.Resend(ctx, f.shopID, inv.ID)
		assert.ErrorIs(t, err, invitation.ErrInvalidState)
	}
}

func TestInvitationService_Resend_EmailFailureKeepsRotation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	inv := f.seedInvitation("groomer@example.com", invitation.StatusPending, time.Now().Add(time.Hour))
	f.mail.sendErr = errors.New("smtp unavailable")

	_, err := f.service.Resend(ctx, f.shopID, inv.ID)

	assert.ErrorIs(t, err, invitation.ErrEmailDeliveryFailed)
	// The old link must stay dead even though the email never went out
	assert.NotEqual(t, inv.Token, f.invRepo.byID[inv.ID].Token)
}

// ===== LIST =====

func TestInvitationService_ListByShop_ShowsStalePendingAsExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newInvitationFixture()
	stale := f.seedInvitation("stale@example.com", invitation.StatusPending, time.Now().Add(-time.Hour))
	f.seedInvitation("fresh@example.com", invitation.StatusPending, time.Now().Add(time.Hour))

	items, err := f.service.ListByShop(ctx, f.shopID)

	require.NoError(t, err)
	require.Len(t, items, 2)

	byEmail := map[string]invitation.ListItem{}
	for _, it := range items {
		byEmail[it.Email] = it
	}
	assert.Equal(t, string(invitation.StatusExpired), byEmail["stale@example.com"].Status)
	assert.Equal(t, string(invitation.StatusPending), byEmail["fresh@example.com"].Status)

	// The displayed status is cosmetic; the stored row stays pending
	assert.Equal(t, invitation.StatusPending, f.invRepo.byID[stale.ID].Status)
}
