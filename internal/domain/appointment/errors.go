package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrAssigneeNotMember   = errors.New("assigned user is not an active member of this shop")
)
