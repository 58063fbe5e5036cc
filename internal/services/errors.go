package services

import "errors"

var (
	// ErrRestaurantNotFound is returned when a restaurant id does not resolve
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrValidation is returned when a mutation input violates a data invariant
	ErrValidation = errors.New("validation failed")
)
