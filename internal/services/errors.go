package services

import "errors"

// Domain errors returned by the services and mapped to HTTP status codes in
// the handlers package.
var (
	// ErrNotFound is returned when a referenced user or session does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when registering an already-used email.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInsufficientCredits is returned when booking with a balance below 1.
	ErrInsufficientCredits = errors.New("insufficient credits to book a session")
	// ErrSessionCompleted is returned when completing an already-completed session.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrSessionClosed is returned on any other transition out of a terminal state.
	ErrSessionClosed = errors.New("session is no longer pending")
)

// ValidationError reports missing or malformed request fields.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
