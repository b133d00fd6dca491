package grooming

import (
	"context"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/grooming"
	"github.com/shopspring/decimal"
)

type GroomingServiceImpl struct {
	grooming.ServiceTypeRepository
}

func NewGroomingService(serviceTypeRepository grooming.ServiceTypeRepository) grooming.GroomingService {
	return &GroomingServiceImpl{
		ServiceTypeRepository: serviceTypeRepository,
	}
}

func toResponse(t grooming.ServiceType) grooming.Response {
	return grooming.Response{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		DefaultPrice: t.DefaultPrice,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements grooming.GroomingService.
func (s *GroomingServiceImpl) Create(ctx context.Context, shopID string, req grooming.CreateRequest) (grooming.Response, error) {
	price := decimal.Zero
	if req.DefaultPrice != nil {
		price = *req.DefaultPrice
	}

	created, err := s.ServiceTypeRepository.Create(ctx, grooming.ServiceType{
		ShopID:       shopID,
		Name:         req.Name,
		Description:  req.Description,
		DefaultPrice: price,
		IsActive:     true,
	})
	if err != nil {
		return grooming.Response{}, err
	}
	return toResponse(created), nil
}

// Get implements grooming.GroomingService.
func (s *GroomingServiceImpl) Get(ctx context.Context, shopID, typeID string) (grooming.Response, error) {
	t, err := s.getShopType(ctx, shopID, typeID)
	if err != nil {
		return grooming.Response{}, err
	}
	return toResponse(t), nil
}

// List implements grooming.GroomingService.
func (s *GroomingServiceImpl) List(ctx context.Context, shopID string, includeInactive bool) ([]grooming.Response, error) {
	types, err := s.ServiceTypeRepository.ListByShop(ctx, shopID, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]grooming.Response, 0, len(types))
	for _, t := range types {
		responses = append(responses, toResponse(t))
	}
	return responses, nil
}

// Update implements grooming.GroomingService.
func (s *GroomingServiceImpl) Update(ctx context.Context, shopID, typeID string, req grooming.UpdateRequest) (grooming.Response, error) {
	t, err := s.getShopType(ctx, shopID, typeID)
	if err != nil {
		return grooming.Response{}, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.DefaultPrice != nil {
		t.DefaultPrice = *req.DefaultPrice
	}

	updated, err := s.ServiceTypeRepository.Update(ctx, t)
	if err != nil {
		return grooming.Response{}, err
	}

	if req.IsActive != nil && *req.IsActive != updated.IsActive {
		if err := s.ServiceTypeRepository.SetActive(ctx, updated.ID, *req.IsActive); err != nil {
			return grooming.Response{}, err
		}
		updated.IsActive = *req.IsActive
	}

	return toResponse(updated), nil
}

// Deactivate implements grooming.GroomingService.
func (s *GroomingServiceImpl) Deactivate(ctx context.Context, shopID, typeID string) error {
	t, err := s.getShopType(ctx, shopID, typeID)
	if err != nil {
		return err
	}
	return s.ServiceTypeRepository.SetActive(ctx, t.ID, false)
}

func (s *GroomingServiceImpl) getShopType(ctx context.Context, shopID, typeID string) (grooming.ServiceType, error) {
	t, err := s.ServiceTypeRepository.GetByID(ctx, typeID)
	if err != nil {
		return grooming.ServiceType{}, err
	}
	if t.ShopID != shopID {
		return grooming.ServiceType{}, grooming.ErrServiceTypeNotFound
	}
	return t, nil
}
