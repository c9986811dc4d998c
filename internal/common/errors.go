package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Validation errors for user input.
	ErrValidation = errors.New("validation error")

	// Entitlement errors.
	ErrLimitReached = errors.New("limit reached")
)
