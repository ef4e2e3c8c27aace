// Package apperrors holds the domain errors shared by repositories, services
// and controllers.
package apperrors

import "errors"

var (
	// repository errors
	ErrNotFound = errors.New("not found")

	// auth errors
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)
