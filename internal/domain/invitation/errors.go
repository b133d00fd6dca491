package invitation

import "errors"

var (
	ErrInvitationNotFound         = errors.New("invitation not found")
	ErrInvitationExpired          = errors.New("invitation has expired")
	ErrInvitationAlreadyAccepted  = errors.New("invitation has already been accepted")
	ErrInvitationAlreadyProcessed = errors.New("invitation has already been processed")
	ErrEmailMismatch              = errors.New("your email does not match the invitation email")
	ErrAlreadyMember              = errors.New("user is already an active member of this shop")
	ErrDuplicatePendingInvitation = errors.New("email already has a pending invitation for this shop")
	ErrInvalidState               = errors.New("only pending invitations can be modified")
	ErrEmailDeliveryFailed        = errors.New("invitation email could not be delivered")
)
