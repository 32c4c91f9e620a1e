package auth

import (
	"net/http"

	"github.com/zvuklib/zvuk-go/pkg/errors"
)

// Handler defines the interface for auth handlers
type Handler interface {
	ApplyAuth(req *http.Request) error
}

// TokenAuth carries the opaque bearer token the API expects in the
// X-Auth-Token header. The token is never mutated, only replaced wholesale
// when the caller re-authenticates.
type TokenAuth struct {
	Token string
}

// NewTokenAuth creates a token authentication handler.
func NewTokenAuth(token string) *TokenAuth {
	return &TokenAuth{Token: token}
}

// ApplyAuth sets the X-Auth-Token header.
func (t *TokenAuth) ApplyAuth(req *http.Request) error {
	if t.Token == "" {
		return errors.Errorf(errors.ErrValidation, "auth token is required")
	}
	req.Header.Set("X-Auth-Token", t.Token)
	return nil
}

// String returns a representation safe for logs.
func (t *TokenAuth) String() string {
	return "TokenAuth(token: [REDACTED])"
}

// Anonymous is a no-op handler for unauthenticated calls.
type Anonymous struct{}

// ApplyAuth does nothing; anonymous calls carry no token.
func (Anonymous) ApplyAuth(*http.Request) error { return nil }
