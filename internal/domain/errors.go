// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Identity errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidIdentity    = errors.New("identity provider returned no usable identity")

	// Internship errors
	ErrCompanyNotFound    = errors.New("company not found")
	ErrInternshipNotFound = errors.New("internship not found")
	ErrInvalidSchedule    = errors.New("closing date must be after posted date")

	// Application errors
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("student already applied to this internship")
	ErrNotCancellable       = errors.New("only pending applications can be cancelled")

	// Review errors
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// Article errors
	ErrArticleNotFound = errors.New("article not found")
)
