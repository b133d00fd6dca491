package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/appointment"
	"github.com/groomday/groomday-backend-go/internal/domain/customer"
	"github.com/groomday/groomday-backend-go/internal/domain/grooming"
	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type AppointmentServiceImpl struct {
	tx database.TxManager
	appointment.AppointmentRepository
	appointment.ServiceLineRepository
	grooming.ServiceTypeRepository
	customer.DogRepository
	staff.MemberRepository
}

func NewAppointmentService(
	tx database.TxManager,
	appointmentRepository appointment.AppointmentRepository,
	serviceLineRepository appointment.ServiceLineRepository,
	serviceTypeRepository grooming.ServiceTypeRepository,
	dogRepository customer.DogRepository,
	memberRepository staff.MemberRepository,
) appointment.AppointmentService {
	return &AppointmentServiceImpl{
		tx:                    tx,
		AppointmentRepository: appointmentRepository,
		ServiceLineRepository: serviceLineRepository,
		ServiceTypeRepository: serviceTypeRepository,
		DogRepository:         dogRepository,
		MemberRepository:      memberRepository,
	}
}

// resolveServiceLines validates every requested line against the shop's
// catalog before anything is written. A single bad line fails the whole
// request: unknown or cross-shop ids read as not found, inactive entries are
// rejected by name. An explicit applied price wins even when zero; otherwise
// the catalog default applies.
func (s *AppointmentServiceImpl) resolveServiceLines(ctx context.Context, shopID string, lines []appointment.ServiceLineRequest) ([]appointment.ValidatedLine, error) {
	validated := make([]appointment.ValidatedLine, 0, len(lines))
	for _, line := range lines {
		t, err := s.ServiceTypeRepository.GetByID(ctx, line.GroomingTypeID)
		if err != nil {
			if errors.Is(err, grooming.ErrServiceTypeNotFound) {
				return nil, fmt.Errorf("%w: %s", grooming.ErrServiceTypeNotFound, line.GroomingTypeID)
			}
			return nil, err
		}
		if t.ShopID != shopID {
			return nil, fmt.Errorf("%w: %s", grooming.ErrServiceTypeNotFound, line.GroomingTypeID)
		}
		if !t.IsActive {
			return nil, fmt.Errorf("%w: %s", grooming.ErrServiceTypeInactive, t.Name)
		}

		price := t.DefaultPrice
		if line.AppliedPrice != nil {
			price = *line.AppliedPrice
		}
		validated = append(validated, appointment.ValidatedLine{
			ServiceTypeID:   t.ID,
			ServiceTypeName: t.Name,
			AppliedPrice:    price,
		})
	}
	return validated, nil
}

// absorbLegacyType folds a free-text service label into the catalog, reusing
// an existing entry with the same name or creating one with a zero default
// price. Absorption never attaches a service line; the free-text field and
// the structured lines stay independent.
func (s *AppointmentServiceImpl) absorbLegacyType(ctx context.Context, shopID string, name *string) error {
	if name == nil || *name == "" {
		return nil
	}
	_, err := s.ServiceTypeRepository.GetByShopAndName(ctx, shopID, *name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, grooming.ErrServiceTypeNotFound) {
		return err
	}
	_, err = s.ServiceTypeRepository.Create(ctx, grooming.ServiceType{
		ShopID:       shopID,
		Name:         *name,
		DefaultPrice: decimal.Zero,
		IsActive:     true,
	})
	return err
}

func (s *AppointmentServiceImpl) checkAssignee(ctx context.Context, shopID string, assignedUserID *string) error {
	if assignedUserID == nil {
		return nil
	}
	isMember, err := s.MemberRepository.ExistsActive(ctx, shopID, *assignedUserID)
	if err != nil {
		return err
	}
	if !isMember {
		return appointment.ErrAssigneeNotMember
	}
	return nil
}

func sumLines(lines []appointment.ValidatedLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.AppliedPrice)
	}
	return total
}

// serviceLabel derives the display label from the attached lines, falling
// back to legacy free text. The label is always computed, never stored.
func serviceLabel(legacy *string, lines []appointment.ServiceLineWithName) string {
	if len(lines) > 0 {
		names := make([]string, 0, len(lines))
		for _, line := range lines {
			names = append(names, line.ServiceTypeName)
		}
		return strings.Join(names, ", ")
	}
	if legacy != nil {
		return *legacy
	}
	return ""
}

func toResponse(a appointment.AppointmentWithDetails) appointment.Response {
	resp := appointment.Response{
		ID:                a.ID,
		DogID:             a.DogID,
		DogName:           a.DogName,
		CustomerID:        a.CustomerID,
		CustomerName:      a.CustomerName,
		AssignedUserID:    a.AssignedUserID,
		AssigneeName:      a.AssigneeName,
		ScheduledDate:     a.ScheduledDate.Format("2006-01-02"),
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
		GroomingTypeLabel: serviceLabel(a.GroomingType, a.Lines),
		Memo:              a.Memo,
		TotalAmount:       a.TotalAmount,
		Status:            string(a.Status),
		ServiceLines:      make([]appointment.ServiceLineResponse, 0, len(a.Lines)),
		CreatedAt:         a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         a.UpdatedAt.Format(time.RFC3339),
	}
	for _, line := range a.Lines {
		resp.ServiceLines = append(resp.ServiceLines, appointment.ServiceLineResponse{
			GroomingTypeID: line.ServiceTypeID,
			Name:           line.ServiceTypeName,
			AppliedPrice:   line.AppliedPrice,
		})
	}
	return resp
}

// Create implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) Create(ctx context.Context, shopID, createdByUserID string, req appointment.CreateRequest) (appointment.Response, error) {
	dog, err := s.DogRepository.GetByID(ctx, req.DogID)
	if err != nil {
		return appointment.Response{}, err
	}
	if dog.ShopID != shopID {
		return appointment.Response{}, customer.ErrDogNotFound
	}

	if err := s.checkAssignee(ctx, shopID, req.AssignedUserID); err != nil {
		return appointment.Response{}, err
	}

	lines, err := s.resolveServiceLines(ctx, shopID, req.GroomingTypes)
	if err != nil {
		return appointment.Response{}, err
	}
	if err := s.absorbLegacyType(ctx, shopID, req.GroomingType); err != nil {
		return appointment.Response{}, err
	}

	total := sumLines(lines)
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}

	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return appointment.Response{}, fmt.Errorf("failed to parse scheduled date: %w", err)
	}

	var created appointment.Appointment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.AppointmentRepository.Create(txCtx, appointment.Appointment{
			ShopID:          shopID,
			DogID:           req.DogID,
			CreatedByUserID: createdByUserID,
			AssignedUserID:  req.AssignedUserID,
			ScheduledDate:   scheduledDate,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			GroomingType:    req.GroomingType,
			Memo:            req.Memo,
			TotalAmount:     total,
			Status:          appointment.StatusScheduled,
		})
		if err != nil {
			return err
		}
		return s.ServiceLineRepository.Insert(txCtx, created.ID, lines)
	})
	if err != nil {
		return appointment.Response{}, err
	}

	return s.Get(ctx, shopID, created.ID)
}

// Get implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) Get(ctx context.Context, shopID, appointmentID string) (appointment.Response, error) {
	a, err := s.getShopAppointment(ctx, shopID, appointmentID)
	if err != nil {
		return appointment.Response{}, err
	}

	a.Lines, err = s.ServiceLineRepository.ListByAppointment(ctx, a.ID)
	if err != nil {
		return appointment.Response{}, err
	}
	return toResponse(a), nil
}

// List implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) List(ctx context.Context, shopID string, filter appointment.ListFilter) ([]appointment.Response, int64, error) {
	appointments, err := s.AppointmentRepository.List(ctx, shopID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.AppointmentRepository.Count(ctx, shopID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]appointment.Response, 0, len(appointments))
	for _, a := range appointments {
		a.Lines, err = s.ServiceLineRepository.ListByAppointment(ctx, a.ID)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, toResponse(a))
	}
	return responses, total, nil
}

// Update implements appointment.AppointmentService. A non-nil grooming_types
// slice fully replaces the existing lines in the same transaction as the
// appointment row; nil leaves them untouched.
func (s *AppointmentServiceImpl) Update(ctx context.Context, shopID, appointmentID string, req appointment.UpdateRequest) (appointment.Response, error) {
	existing, err := s.getShopAppointment(ctx, shopID, appointmentID)
	if err != nil {
		return appointment.Response{}, err
	}

	if err := s.checkAssignee(ctx, shopID, req.AssignedUserID); err != nil {
		return appointment.Response{}, err
	}

	var lines []appointment.ValidatedLine
	replaceLines := req.GroomingTypes != nil
	if replaceLines {
		lines, err = s.resolveServiceLines(ctx, shopID, *req.GroomingTypes)
		if err != nil {
			return appointment.Response{}, err
		}
	}

	a := existing.Appointment
	if req.AssignedUserID != nil {
		a.AssignedUserID = req.AssignedUserID
	}
	if req.ScheduledDate != nil {
		scheduledDate, err := time.Parse("2006-01-02", *req.ScheduledDate)
		if err != nil {
			return appointment.Response{}, fmt.Errorf("failed to parse scheduled date: %w", err)
		}
		a.ScheduledDate = scheduledDate
	}
	if req.StartTime != nil {
		a.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		a.EndTime = req.EndTime
	}
	if req.GroomingType != nil {
		if err := s.absorbLegacyType(ctx, shopID, req.GroomingType); err != nil {
			return appointment.Response{}, err
		}
		a.GroomingType = req.GroomingType
	}
	if req.Memo != nil {
		a.Memo = req.Memo
	}
	switch {
	case req.TotalAmount != nil:
		a.TotalAmount = *req.TotalAmount
	case replaceLines:
		a.TotalAmount = sumLines(lines)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.AppointmentRepository.Update(txCtx, a); err != nil {
			return err
		}
		if replaceLines {
			if err := s.ServiceLineRepository.DeleteByAppointment(txCtx, a.ID); err != nil {
				return err
			}
			return s.ServiceLineRepository.Insert(txCtx, a.ID, lines)
		}
		return nil
	})
	if err != nil {
		return appointment.Response{}, err
	}

	return s.Get(ctx, shopID, appointmentID)
}

// UpdateStatus implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, shopID, appointmentID string, req appointment.StatusRequest) (appointment.Response, error) {
	a, err := s.getShopAppointment(ctx, shopID, appointmentID)
	if err != nil {
		return appointment.Response{}, err
	}

	if err := s.AppointmentRepository.UpdateStatus(ctx, a.ID, appointment.Status(req.Status)); err != nil {
		return appointment.Response{}, err
	}
	return s.Get(ctx, shopID, appointmentID)
}

// Cancel implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) Cancel(ctx context.Context, shopID, appointmentID string) error {
	a, err := s.getShopAppointment(ctx, shopID, appointmentID)
	if err != nil {
		return err
	}
	return s.AppointmentRepository.UpdateStatus(ctx, a.ID, appointment.StatusCancelled)
}

func (s *AppointmentServiceImpl) getShopAppointment(ctx context.Context, shopID, appointmentID string) (appointment.AppointmentWithDetails, error) {
	a, err := s.AppointmentRepository.GetByID(ctx, appointmentID)
	if err != nil {
		return appointment.AppointmentWithDetails{}, err
	}
	if a.ShopID != shopID {
		return appointment.AppointmentWithDetails{}, appointment.ErrAppointmentNotFound
	}
	return a, nil
}
