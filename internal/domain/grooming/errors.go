package grooming

import "errors"

var (
	// ErrServiceTypeNotFound also covers cross-shop references: a type owned
	// by another shop is reported as not found, never silently ignored
	ErrServiceTypeNotFound = errors.New("grooming service type not found")
	ErrServiceTypeInactive = errors.New("grooming service type is inactive")
	ErrNameExists          = errors.New("a grooming service type with this name already exists")
)
