package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned by a Verifier for expired, malformed, or
// untrusted tokens.
var ErrInvalidToken = errors.New("invalid id token")

// Principal is the verified caller identity for a single request.
type Principal struct {
	UID   string
	Email string
}

// Verifier turns a bearer id token into a Principal.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Principal, error)
}
