package grooming

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/grooming"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceTypeRepo struct {
	byID   map[string]grooming.ServiceType
	nextID int
}

func newFakeServiceTypeRepo() *fakeServiceTypeRepo {
	return &fakeServiceTypeRepo{byID: map[string]grooming.ServiceType{}}
}

func (r *fakeServiceTypeRepo) Create(ctx context.Context, t grooming.ServiceType) (grooming.ServiceType, error) {
	for _, existing := range r.byID {
		if existing.ShopID == t.ShopID && strings.EqualFold(existing.Name, t.Name) {
			return grooming.ServiceType{}, grooming.ErrNameExists
		}
	}
	r.nextID++
	t.ID = fmt.Sprintf("type-%d", r.nextID)
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.byID[t.ID] = t
	return t, nil
}

func (r *fakeServiceTypeRepo) GetByID(ctx context.Context, id string) (grooming.ServiceType, error) {
	t, ok := r.byID[id]
	if !ok {
		return grooming.ServiceType{}, grooming.ErrServiceTypeNotFound
	}
	return t, nil
}

func (r *fakeServiceTypeRepo) GetByShopAndName(ctx context.Context, shopID, name string) (grooming.ServiceType, error) {
	for _, t := range r.byID {
		if t.ShopID == shopID && strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return grooming.ServiceType{}, grooming.ErrServiceTypeNotFound
}

func (r *fakeServiceTypeRepo) ListByShop(ctx context.Context, shopID string, includeInactive bool) ([]grooming.ServiceType, error) {
	var out []grooming.ServiceType
	for _, t := range r.byID {
		if t.ShopID != shopID {
			continue
		}
		if !t.IsActive && !includeInactive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeServiceTypeRepo) Update(ctx context.Context, t grooming.ServiceType) (grooming.ServiceType, error) {
	if _, ok := r.byID[t.ID]; !ok {
		return grooming.ServiceType{}, grooming.ErrServiceTypeNotFound
	}
	t.UpdatedAt = time.Now()
	r.byID[t.ID] = t
	return t, nil
}

func (r *fakeServiceTypeRepo) SetActive(ctx context.Context, id string, active bool) error {
	t, ok := r.byID[id]
	if !ok {
		return grooming.ErrServiceTypeNotFound
	}
	t.IsActive = active
	r.byID[id] = t
	return nil
}

func TestGroomingService_Create_DefaultsToZeroPriceAndActive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewGroomingService(newFakeServiceTypeRepo())

	resp, err := svc.Create(ctx, "shop-1", grooming.CreateRequest{Name: "Bath"})

	require.NoError(t, err)
	assert.Equal(t, "Bath", resp.Name)
	assert.True(t, resp.DefaultPrice.IsZero())
	assert.True(t, resp.IsActive)
}

func TestGroomingService_Create_DuplicateName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewGroomingService(newFakeServiceTypeRepo())

	_, err := svc.Create(ctx, "shop-1", grooming.CreateRequest{Name: "Bath"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "shop-1", grooming.CreateRequest{Name: "bath"})
	assert.ErrorIs(t, err, grooming.ErrNameExists)
}

func TestGroomingService_List_HidesInactiveByDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeServiceTypeRepo()
	svc := NewGroomingService(repo)

	price := decimal.NewFromInt(30000)
	active, err := svc.Create(ctx, "shop-1", grooming.CreateRequest{Name: "Bath", DefaultPrice: &price})
	require.NoError(t, err)
	retired, err := svc.Create(ctx, "shop-1", grooming.CreateRequest{Name: "Retired Spa"})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(ctx, "shop-1", retired.ID))

	visible, err := svc.List(ctx, "shop-1", false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.ID, visible[0].ID)

	all, err := svc.List(ctx, "shop-1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGroomingService_Deactivate_KeepsEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeServiceTypeRepo()
	svc := NewGroomingService(repo)

	created, err := svc.Create(ctx, "shop-1", grooming.CreateRequest{Name: "Bath"})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, "shop-1", created.ID))

	// Deactivation never removes the row; history still references it
	got, err := svc.Get(ctx, "shop-1", created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestGroomingService_Update_ReactivatesViaFlag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeServiceTypeRepo()
	svc := NewGroomingService(repo)

	created, err := svc.Create(ctx, "shop-1", grooming.CreateRequest{Name: "Bath"})
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(ctx, "shop-1", created.ID))

	activeAgain := true
	newPrice := decimal.NewFromInt(35000)
	resp, err := svc.Update(ctx, "shop-1", created.ID, grooming.UpdateRequest{
		DefaultPrice: &newPrice,
		IsActive:     &activeAgain,
	})

	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.True(t, resp.DefaultPrice.Equal(decimal.NewFromInt(35000)))
}

func TestGroomingService_Get_CrossShopReadsAsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewGroomingService(newFakeServiceTypeRepo())

	created, err := svc.Create(ctx, "shop-1", grooming.CreateRequest{Name: "Bath"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "shop-other", created.ID)
	assert.ErrorIs(t, err, grooming.ErrServiceTypeNotFound)
}
