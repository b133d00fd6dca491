package staff

import "errors"

var (
	ErrMemberNotFound    = errors.New("staff member not found")
	ErrAlreadyMember     = errors.New("user is already a member of this shop")
	ErrCannotModifyOwner = errors.New("the shop owner membership cannot be modified")
	ErrInvalidRole       = errors.New("invalid staff role")
)
