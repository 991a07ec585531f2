// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound    = errors.New("not found")
	ErrEmailExists = errors.New("email already registered")

	// Service-level errors.
	ErrValidation        = errors.New("email and password required")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInternal          = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
