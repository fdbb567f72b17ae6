package token

import "errors"

var (
	// ErrInvalidToken covers every verification failure: bad signature, wrong
	// issuer or audience, expiry, and token-kind mismatch. Callers must not be
	// able to tell which check failed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidHeader is returned when an Authorization header is missing or
	// does not use the Bearer scheme.
	ErrInvalidHeader = errors.New("invalid authorization header")
)
