package auth

import "errors"

var (
	// ErrNotConfigured is returned by sign-in/sign-up in local mode.
	ErrNotConfigured = errors.New("auth service is not configured")

	// ErrInvalidCredentials is returned for rejected email/password pairs.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoSession is returned when an operation needs a signed-in user.
	ErrNoSession = errors.New("no active session")

	// ErrUnavailable is returned when the auth service cannot be reached.
	ErrUnavailable = errors.New("auth service unavailable")
)
