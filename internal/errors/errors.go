// Package errors contains sentinel errors used across layers for stable
// error-to-status mapping at the HTTP boundary.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials indicates the caller supplied an empty
	// username or password. Mapped to 400.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrInvalidCredentials indicates the backend rejected the credential
	// pair. The cause (unknown user vs. wrong password) is deliberately
	// not distinguished. Mapped to 401.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNoSession indicates no session cookie was present on a
	// protected route. Mapped to 401.
	ErrNoSession = errors.New("no session")

	// ErrBadSessionCookie indicates a session cookie was present but
	// could not be decoded. Mapped to 500, distinct from ErrNoSession.
	ErrBadSessionCookie = errors.New("malformed session cookie")

	// ErrBackend indicates the identity backend was unreachable or
	// returned an unusable response. Mapped to 500.
	ErrBackend = errors.New("identity backend failure")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
