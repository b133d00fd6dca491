package shop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/shop"
	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/groomday/groomday-backend-go/internal/domain/user"
	"github.com/groomday/groomday-backend-go/internal/pkg/database"
	"github.com/groomday/groomday-backend-go/internal/service/file"
)

type ShopServiceImpl struct {
	tx database.TxManager
	shop.ShopRepository
	staff.MemberRepository
	user.UserRepository
	file.FileService
}

func NewShopService(tx database.TxManager, shopRepository shop.ShopRepository, memberRepository staff.MemberRepository, userRepository user.UserRepository, fileService file.FileService) shop.ShopService {
	return &ShopServiceImpl{
		tx:               tx,
		ShopRepository:   shopRepository,
		MemberRepository: memberRepository,
		UserRepository:   userRepository,
		FileService:      fileService,
	}
}

func toResponse(s shop.Shop) shop.Response {
	return shop.Response{
		ID:        s.ID,
		Name:      s.Name,
		Slug:      s.Slug,
		Phone:     s.Phone,
		Address:   s.Address,
		LogoURL:   s.LogoURL,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements shop.ShopService. The shop row, the owner membership, and
// the creator's primary-shop pointer are written in one transaction.
func (s *ShopServiceImpl) Create(ctx context.Context, ownerUserID string, req shop.CreateRequest) (shop.Response, error) {
	owner, err := s.UserRepository.GetByID(ctx, ownerUserID)
	if err != nil {
		return shop.Response{}, err
	}
	if owner.ShopID != nil {
		return shop.Response{}, shop.ErrUserAlreadyHasShop
	}

	if _, err := s.ShopRepository.GetBySlug(ctx, req.Slug); err == nil {
		return shop.Response{}, shop.ErrSlugExists
	} else if !errors.Is(err, shop.ErrShopNotFound) {
		return shop.Response{}, err
	}

	var created shop.Shop
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.ShopRepository.Create(txCtx, shop.Shop{
			Name:    req.Name,
			Slug:    req.Slug,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			return err
		}

		_, err = s.MemberRepository.Create(txCtx, staff.Member{
			ShopID:   created.ID,
			UserID:   ownerUserID,
			Role:     staff.RoleOwner,
			IsActive: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}

		if err := s.UserRepository.AssignShop(txCtx, ownerUserID, created.ID, user.RoleOwner); err != nil {
			return fmt.Errorf("failed to assign shop to owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return shop.Response{}, err
	}

	return toResponse(created), nil
}

// GetByID implements shop.ShopService.
func (s *ShopServiceImpl) GetByID(ctx context.Context, shopID string) (shop.Response, error) {
	shopData, err := s.ShopRepository.GetByID(ctx, shopID)
	if err != nil {
		return shop.Response{}, err
	}
	return toResponse(shopData), nil
}

// Update implements shop.ShopService.
func (s *ShopServiceImpl) Update(ctx context.Context, shopID string, req shop.UpdateRequest) (shop.Response, error) {
	shopData, err := s.ShopRepository.GetByID(ctx, shopID)
	if err != nil {
		return shop.Response{}, err
	}

	if req.Name != nil {
		shopData.Name = *req.Name
	}
	if req.Phone != nil {
		shopData.Phone = req.Phone
	}
	if req.Address != nil {
		shopData.Address = req.Address
	}

	updated, err := s.ShopRepository.Update(ctx, shopData)
	if err != nil {
		return shop.Response{}, err
	}
	return toResponse(updated), nil
}

// UploadLogo implements shop.ShopService.
func (s *ShopServiceImpl) UploadLogo(ctx context.Context, shopID string, fileReader io.Reader, filename string) (string, error) {
	if _, err := s.ShopRepository.GetByID(ctx, shopID); err != nil {
		return "", err
	}

	path, err := s.FileService.UploadShopLogo(ctx, shopID, fileReader, filename)
	if err != nil {
		return "", err
	}

	url, err := s.FileService.GetFileURL(ctx, path, 0)
	if err != nil {
		return "", err
	}

	if err := s.ShopRepository.UpdateLogo(ctx, shopID, url); err != nil {
		return "", err
	}
	return url, nil
}
