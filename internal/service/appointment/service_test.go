package appointment

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/appointment"
	"github.com/groomday/groomday-backend-go/internal/domain/customer"
	"github.com/groomday/groomday-backend-go/internal/domain/grooming"
	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAppointmentRepo struct {
	byID         map[string]appointment.Appointment
	nextID       int
	dogName      string
	customerID   string
	customerName string
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		byID:         map[string]appointment.Appointment{},
		dogName:      "Bobby",
		customerID:   "cust-1",
		customerName: "Kim Minji",
	}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	r.nextID++
	a.ID = fmt.Sprintf("appt-%d", r.nextID)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.byID[a.ID] = a
	return a, nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (appointment.AppointmentWithDetails, error) {
	a, ok := r.byID[id]
	if !ok {
		return appointment.AppointmentWithDetails{}, appointment.ErrAppointmentNotFound
	}
	return appointment.AppointmentWithDetails{
		Appointment:  a,
		DogName:      r.dogName,
		CustomerID:   r.customerID,
		CustomerName: r.customerName,
	}, nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context, shopID string, filter appointment.ListFilter) ([]appointment.AppointmentWithDetails, error) {
	var out []appointment.AppointmentWithDetails
	for id, a := range r.byID {
		if a.ShopID != shopID {
			continue
		}
		detail, _ := r.GetByID(ctx, id)
		out = append(out, detail)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Count(ctx context.Context, shopID string, filter appointment.ListFilter) (int64, error) {
	var n int64
	for _, a := range r.byID {
		if a.ShopID == shopID {
			n++
		}
	}
	return n, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	if _, ok := r.byID[a.ID]; !ok {
		return appointment.Appointment{}, appointment.ErrAppointmentNotFound
	}
	a.UpdatedAt = time.Now()
	r.byID[a.ID] = a
	return a, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status appointment.Status) error {
	a, ok := r.byID[id]
	if !ok {
		return appointment.ErrAppointmentNotFound
	}
	a.Status = status
	r.byID[id] = a
	return nil
}

type fakeServiceLineRepo struct {
	byAppointment map[string][]appointment.ServiceLineWithName
}

func newFakeServiceLineRepo() *fakeServiceLineRepo {
	return &fakeServiceLineRepo{byAppointment: map[string][]appointment.ServiceLineWithName{}}
}

func (r *fakeServiceLineRepo) Insert(ctx context.Context, appointmentID string, lines []appointment.ValidatedLine) error {
	for _, line := range lines {
		r.byAppointment[appointmentID] = append(r.byAppointment[appointmentID], appointment.ServiceLineWithName{
			ServiceLine: appointment.ServiceLine{
				AppointmentID: appointmentID,
				ServiceTypeID: line.ServiceTypeID,
				AppliedPrice:  line.AppliedPrice,
			},
			ServiceTypeName: line.ServiceTypeName,
		})
	}
	return nil
}

func (r *fakeServiceLineRepo) DeleteByAppointment(ctx context.Context, appointmentID string) error {
	delete(r.byAppointment, appointmentID)
	return nil
}

func (r *fakeServiceLineRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]appointment.ServiceLineWithName, error) {
	return r.byAppointment[appointmentID], nil
}

type fakeServiceTypeRepo struct {
	byID   map[string]grooming.ServiceType
	nextID int
}

func newFakeServiceTypeRepo() *fakeServiceTypeRepo {
	return &fakeServiceTypeRepo{byID: map[string]grooming.ServiceType{}}
}

func (r *fakeServiceTypeRepo) Create(ctx context.Context, t grooming.ServiceType) (grooming.ServiceType, error) {
	r.nextID++
	t.ID = fmt.Sprintf("type-%d", r.nextID)
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
	return nil, nil
}

func (r *fakeServiceTypeRepo) Update(ctx context.Context, t grooming.ServiceType) (grooming.ServiceType, error) {
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

type fakeDogRepo struct {
	byID map[string]customer.Dog
}

func (r *fakeDogRepo) Create(ctx context.Context, d customer.Dog) (customer.Dog, error) { return d, nil }

func (r *fakeDogRepo) GetByID(ctx context.Context, id string) (customer.Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return customer.Dog{}, customer.ErrDogNotFound
	}
	return d, nil
}

func (r *fakeDogRepo) ListByCustomer(ctx context.Context, customerID string) ([]customer.Dog, error) {
	return nil, nil
}

func (r *fakeDogRepo) Update(ctx context.Context, d customer.Dog) (customer.Dog, error) { return d, nil }

func (r *fakeDogRepo) UpdatePhoto(ctx context.Context, id, photoURL string) error { return nil }

func (r *fakeDogRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeMemberChecker struct {
	active map[string]bool // shopID|userID
}

func (r *fakeMemberChecker) Create(ctx context.Context, m staff.Member) (staff.Member, error) {
	return m, nil
}

func (r *fakeMemberChecker) GetByID(ctx context.Context, id string) (staff.Member, error) {
	return staff.Member{}, staff.ErrMemberNotFound
}

func (r *fakeMemberChecker) ExistsActive(ctx context.Context, shopID, userID string) (bool, error) {
	return r.active[shopID+"|"+userID], nil
}

func (r *fakeMemberChecker) ListByShop(ctx context.Context, shopID string) ([]staff.MemberWithUser, error) {
	return nil, nil
}

func (r *fakeMemberChecker) Update(ctx context.Context, m staff.Member) (staff.Member, error) {
	return m, nil
}

// ===== FIXTURE =====

type appointmentFixture struct {
	service  appointment.AppointmentService
	appts    *fakeAppointmentRepo
	lines    *fakeServiceLineRepo
	types    *fakeServiceTypeRepo
	dogs     *fakeDogRepo
	members  *fakeMemberChecker
	shopID   string
	userID   string
	dogID    string
	bathID   string
	trimID   string
	closedID string
}

func newAppointmentFixture() *appointmentFixture {
	appts := newFakeAppointmentRepo()
	lines := newFakeServiceLineRepo()
	types := newFakeServiceTypeRepo()
	members := &fakeMemberChecker{active: map[string]bool{}}

	shopID := "shop-1"
	dogID := "dog-1"
	dogs := &fakeDogRepo{byID: map[string]customer.Dog{
		dogID:       {ID: dogID, ShopID: shopID, CustomerID: "cust-1", Name: "Bobby"},
		"dog-other": {ID: "dog-other", ShopID: "shop-other", CustomerID: "cust-9", Name: "Stray"},
	}}

	bath, _ := types.Create(context.Background(), grooming.ServiceType{
		ShopID: shopID, Name: "Bath", DefaultPrice: decimal.NewFromInt(30000), IsActive: true,
	})
	trim, _ := types.Create(context.Background(), grooming.ServiceType{
		ShopID: shopID, Name: "Full Trim", DefaultPrice: decimal.NewFromInt(55000), IsActive: true,
	})
	closed, _ := types.Create(context.Background(), grooming.ServiceType{
		ShopID: shopID, Name: "Retired Spa", DefaultPrice: decimal.NewFromInt(90000), IsActive: false,
	})

	svc := NewAppointmentService(&fakeTxManager{}, appts, lines, types, dogs, members)
	return &appointmentFixture{
		service:  svc,
		appts:    appts,
		lines:    lines,
		types:    types,
		dogs:     dogs,
		members:  members,
		shopID:   shopID,
		userID:   "user-1",
		dogID:    dogID,
		bathID:   bath.ID,
		trimID:   trim.ID,
		closedID: closed.ID,
	}
}

func (f *appointmentFixture) createRequest() appointment.CreateRequest {
	return appointment.CreateRequest{
		DogID:         f.dogID,
		ScheduledDate: "2026-09-01",
		StartTime:     "10:00",
		GroomingTypes: []appointment.ServiceLineRequest{
			{GroomingTypeID: f.bathID},
			{GroomingTypeID: f.trimID},
		},
	}
}

// ===== CREATE =====

func TestAppointmentService_Create_DefaultPricesAndLabel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	resp, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())

	require.NoError(t, err)
	assert.Equal(t, "Bobby", resp.DogName)
	assert.Equal(t, "Kim Minji", resp.CustomerName)
	assert.Equal(t, "2026-09-01", resp.ScheduledDate)
	assert.Equal(t, string(appointment.StatusScheduled), resp.Status)
	assert.Equal(t, "Bath, Full Trim", resp.GroomingTypeLabel)
	require.Len(t, resp.ServiceLines, 2)
	assert.True(t, resp.ServiceLines[0].AppliedPrice.Equal(decimal.NewFromInt(30000)))
	assert.True(t, resp.ServiceLines[1].AppliedPrice.Equal(decimal.NewFromInt(55000)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(85000)))
}

func TestAppointmentService_Create_ExplicitZeroPriceHonored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	req := f.createRequest()
	zero := decimal.Zero
	req.GroomingTypes = []appointment.ServiceLineRequest{
		{GroomingTypeID: f.bathID, AppliedPrice: &zero},
		{GroomingTypeID: f.trimID},
	}

	resp, err := f.service.Create(ctx, f.shopID, f.userID, req)

	require.NoError(t, err)
	require.Len(t, resp.ServiceLines, 2)
	assert.True(t, resp.ServiceLines[0].AppliedPrice.IsZero())
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(55000)))
}

func TestAppointmentService_Create_ExplicitTotalOverridesLineSum(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	req := f.createRequest()
	total := decimal.NewFromInt(80000)
	req.TotalAmount = &total

	resp, err := f.service.Create(ctx, f.shopID, f.userID, req)

	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(80000)))
}

func TestAppointmentService_Create_InactiveTypeRejectsWholeRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	req := f.createRequest()
	req.GroomingTypes = append(req.GroomingTypes, appointment.ServiceLineRequest{GroomingTypeID: f.closedID})

	_, err := f.service.Create(ctx, f.shopID, f.userID, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, grooming.ErrServiceTypeInactive)
	assert.Contains(t, err.Error(), "Retired Spa")
	assert.Empty(t, f.appts.byID)
	assert.Empty(t, f.lines.byAppointment)
}

func TestAppointmentService_Create_CrossShopTypeReadsAsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	other, err := f.types.Create(ctx, grooming.ServiceType{
		ShopID: "shop-other", Name: "Other Bath", DefaultPrice: decimal.NewFromInt(10000), IsActive: true,
	})
	require.NoError(t, err)

	req := f.createRequest()
	req.GroomingTypes = []appointment.ServiceLineRequest{{GroomingTypeID: other.ID}}

	_, err = f.service.Create(ctx, f.shopID, f.userID, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, grooming.ErrServiceTypeNotFound)
	assert.Contains(t, err.Error(), other.ID)
}

func TestAppointmentService_Create_UnknownTypeNamesReference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	req := f.createRequest()
	req.GroomingTypes = []appointment.ServiceLineRequest{{GroomingTypeID: "type-missing"}}

	_, err := f.service.Create(ctx, f.shopID, f.userID, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, grooming.ErrServiceTypeNotFound)
	assert.Contains(t, err.Error(), "type-missing")
}

func TestAppointmentService_Create_CrossShopDogReadsAsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	req := f.createRequest()
	req.DogID = "dog-other"

	_, err := f.service.Create(ctx, f.shopID, f.userID, req)

	assert.ErrorIs(t, err, customer.ErrDogNotFound)
}

func TestAppointmentService_Create_AssigneeMustBeActiveMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	req := f.createRequest()
	assignee := "user-9"
	req.AssignedUserID = &assignee

	_, err := f.service.Create(ctx, f.shopID, f.userID, req)
	assert.ErrorIs(t, err, appointment.ErrAssigneeNotMember)

	f.members.active[f.shopID+"|user-9"] = true
	resp, err := f.service.Create(ctx, f.shopID, f.userID, req)
	require.NoError(t, err)
	require.NotNil(t, resp.AssignedUserID)
	assert.Equal(t, "user-9", *resp.AssignedUserID)
}

func TestAppointmentService_Create_LegacyTextNeverAttachesLines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	req := f.createRequest()
	req.GroomingTypes = nil
	legacy := "full trim"
	req.GroomingType = &legacy

	resp, err := f.service.Create(ctx, f.shopID, f.userID, req)

	require.NoError(t, err)
	// Free text is absorbed into the catalog but stays independent of the
	// structured lines
	assert.Empty(t, resp.ServiceLines)
	assert.Equal(t, "full trim", resp.GroomingTypeLabel)
	assert.True(t, resp.TotalAmount.IsZero())
}

func TestAppointmentService_Create_LegacyTextCreatesZeroPricedEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	req := f.createRequest()
	req.GroomingTypes = nil
	legacy := "Teeth Cleaning"
	req.GroomingType = &legacy

	resp, err := f.service.Create(ctx, f.shopID, f.userID, req)

	require.NoError(t, err)
	assert.Empty(t, resp.ServiceLines)
	assert.Equal(t, "Teeth Cleaning", resp.GroomingTypeLabel)

	created, err := f.types.GetByShopAndName(ctx, f.shopID, "teeth cleaning")
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.True(t, created.DefaultPrice.IsZero())
}

func TestAppointmentService_Create_LegacyTextCoexistsWithLines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	req := f.createRequest()
	req.GroomingTypes = []appointment.ServiceLineRequest{{GroomingTypeID: f.bathID}}
	legacy := "Teeth Cleaning"
	req.GroomingType = &legacy

	resp, err := f.service.Create(ctx, f.shopID, f.userID, req)

	require.NoError(t, err)
	require.Len(t, resp.ServiceLines, 1)
	assert.Equal(t, f.bathID, resp.ServiceLines[0].GroomingTypeID)
	// Attached lines win the label; the free text was still absorbed
	assert.Equal(t, "Bath", resp.GroomingTypeLabel)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(30000)))

	_, err = f.types.GetByShopAndName(ctx, f.shopID, "Teeth Cleaning")
	assert.NoError(t, err)
}

// ===== UPDATE =====

func TestAppointmentService_Update_NilLinesLeaveExistingUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	created, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())
	require.NoError(t, err)

	memo := "bring own shampoo"
	resp, err := f.service.Update(ctx, f.shopID, created.ID, appointment.UpdateRequest{Memo: &memo})

	require.NoError(t, err)
	require.NotNil(t, resp.Memo)
	assert.Equal(t, "bring own shampoo", *resp.Memo)
	assert.Len(t, resp.ServiceLines, 2)
	assert.True(t, resp.TotalAmount.Equal(created.TotalAmount))
}

func TestAppointmentService_Update_ReplacesLinesAndRecomputesTotal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	created, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())
	require.NoError(t, err)

	newLines := []appointment.ServiceLineRequest{{GroomingTypeID: f.bathID}}
	resp, err := f.service.Update(ctx, f.shopID, created.ID, appointment.UpdateRequest{GroomingTypes: &newLines})

	require.NoError(t, err)
	require.Len(t, resp.ServiceLines, 1)
	assert.Equal(t, "Bath", resp.GroomingTypeLabel)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(30000)))
}

func TestAppointmentService_Update_EmptySliceClearsLines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	created, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())
	require.NoError(t, err)

	empty := []appointment.ServiceLineRequest{}
	resp, err := f.service.Update(ctx, f.shopID, created.ID, appointment.UpdateRequest{GroomingTypes: &empty})

	require.NoError(t, err)
	assert.Empty(t, resp.ServiceLines)
	assert.True(t, resp.TotalAmount.IsZero())
}

func TestAppointmentService_Update_ExplicitTotalWinsOverRecompute(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	created, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())
	require.NoError(t, err)

	newLines := []appointment.ServiceLineRequest{{GroomingTypeID: f.bathID}}
	total := decimal.NewFromInt(25000)
	resp, err := f.service.Update(ctx, f.shopID, created.ID, appointment.UpdateRequest{
		GroomingTypes: &newLines,
		TotalAmount:   &total,
	})

	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(25000)))
}

func TestAppointmentService_Update_LegacyTextAbsorbedIntoCatalog(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	created, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())
	require.NoError(t, err)

	legacy := "Nail Clipping"
	resp, err := f.service.Update(ctx, f.shopID, created.ID, appointment.UpdateRequest{GroomingType: &legacy})

	require.NoError(t, err)
	// Existing lines still drive the label and stay attached
	assert.Len(t, resp.ServiceLines, 2)
	assert.Equal(t, "Bath, Full Trim", resp.GroomingTypeLabel)

	absorbed, err := f.types.GetByShopAndName(ctx, f.shopID, "nail clipping")
	require.NoError(t, err)
	assert.True(t, absorbed.DefaultPrice.IsZero())
}

func TestAppointmentService_Update_InvalidLineLeavesEverythingUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	created, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())
	require.NoError(t, err)

	bad := []appointment.ServiceLineRequest{{GroomingTypeID: f.closedID}}
	_, err = f.service.Update(ctx, f.shopID, created.ID, appointment.UpdateRequest{GroomingTypes: &bad})

	assert.ErrorIs(t, err, grooming.ErrServiceTypeInactive)

	current, err := f.service.Get(ctx, f.shopID, created.ID)
	require.NoError(t, err)
	assert.Len(t, current.ServiceLines, 2)
	assert.True(t, current.TotalAmount.Equal(created.TotalAmount))
}

// ===== STATUS / LOOKUP =====

func TestAppointmentService_UpdateStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	created, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())
	require.NoError(t, err)

	resp, err := f.service.UpdateStatus(ctx, f.shopID, created.ID, appointment.StatusRequest{Status: string(appointment.StatusCompleted)})

	require.NoError(t, err)
	assert.Equal(t, string(appointment.StatusCompleted), resp.Status)
}

func TestAppointmentService_Cancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	created, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())
	require.NoError(t, err)

	err = f.service.Cancel(ctx, f.shopID, created.ID)
	require.NoError(t, err)

	resp, err := f.service.Get(ctx, f.shopID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(appointment.StatusCancelled), resp.Status)
}

func TestAppointmentService_Get_CrossShopReadsAsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newAppointmentFixture()

	created, err := f.service.Create(ctx, f.shopID, f.userID, f.createRequest())
	require.NoError(t, err)

	_, err = f.service.Get(ctx, "shop-other", created.ID)

	assert.ErrorIs(t, err, appointment.ErrAppointmentNotFound)
}
