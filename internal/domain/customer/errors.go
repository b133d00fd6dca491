package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDogNotFound      = errors.New("dog not found")
	ErrPhoneExists      = errors.New("phone number already registered in this shop")
)
