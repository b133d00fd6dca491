package staff

import (
	"context"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/staff"
	"github.com/groomday/groomday-backend-go/internal/domain/user"
)

type StaffServiceImpl struct {
	staff.MemberRepository
	user.UserRepository
}

func NewStaffService(memberRepository staff.MemberRepository, userRepository user.UserRepository) staff.StaffService {
	return &StaffServiceImpl{
		MemberRepository: memberRepository,
		UserRepository:   userRepository,
	}
}

func toResponse(m staff.MemberWithUser) staff.Response {
	return staff.Response{
		ID:       m.ID,
		UserID:   m.UserID,
		Name:     m.UserName,
		Email:    m.UserEmail,
		Role:     string(m.Role),
		IsActive: m.IsActive,
		JoinedAt: m.JoinedAt.Format(time.RFC3339),
	}
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, shopID string) ([]staff.Response, error) {
	members, err := s.MemberRepository.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.Response, 0, len(members))
	for _, m := range members {
		responses = append(responses, toResponse(m))
	}
	return responses, nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, shopID, memberID string, req staff.UpdateRequest) (staff.Response, error) {
	member, err := s.getShopMember(ctx, shopID, memberID)
	if err != nil {
		return staff.Response{}, err
	}
	if member.Role == staff.RoleOwner {
		return staff.Response{}, staff.ErrCannotModifyOwner
	}

	if req.Role != nil {
		member.Role = staff.Role(*req.Role)
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	updated, err := s.MemberRepository.Update(ctx, member)
	if err != nil {
		return staff.Response{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, updated.UserID)
	if err != nil {
		return staff.Response{}, err
	}

	return toResponse(staff.MemberWithUser{
		Member:    updated,
		UserName:  userData.Name,
		UserEmail: userData.Email,
	}), nil
}

// Remove implements staff.StaffService. Memberships are deactivated, never
// deleted, so appointment history keeps its assignee references.
func (s *StaffServiceImpl) Remove(ctx context.Context, shopID, memberID string) error {
	member, err := s.getShopMember(ctx, shopID, memberID)
	if err != nil {
		return err
	}
	if member.Role == staff.RoleOwner {
		return staff.ErrCannotModifyOwner
	}

	member.IsActive = false
	_, err = s.MemberRepository.Update(ctx, member)
	return err
}

func (s *StaffServiceImpl) getShopMember(ctx context.Context, shopID, memberID string) (staff.Member, error) {
	member, err := s.MemberRepository.GetByID(ctx, memberID)
	if err != nil {
		return staff.Member{}, err
	}
	// Cross-shop ids are indistinguishable from unknown ids
	if member.ShopID != shopID {
		return staff.Member{}, staff.ErrMemberNotFound
	}
	return member, nil
}
