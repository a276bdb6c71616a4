package usecase

import "errors"

var (
	// ErrInvalidInput marks a bad sport, season, code or id from the caller.
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable means a provider is short-circuited or an
	// optional component (admin routes) is switched off.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrNoFixture means an upstream call failed and nothing can stand in.
	ErrNoFixture = errors.New("no fallback data available")
)

// IsCallerError reports whether err was caused by the request rather than
// by a provider or the server.
func IsCallerError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrUnauthorized)
}
