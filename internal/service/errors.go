package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured signals missing server-side configuration (session
	// secret). Distinct from authentication failures and never described to
	// clients beyond a generic notice.
	ErrNotConfigured = errors.New("server not configured")

	// ErrInvalidCredentials covers unknown email and wrong password alike so
	// responses cannot reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden signals a valid principal without the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")

	ErrIDRequired = errors.New("id is required")
)

// ValidationError is a client input error carrying a human-readable message
// naming the first failed check. Handlers map it to a 400 response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
