// Package auth provides authentication utilities for API keys.
package auth

import (
	"crypto/subtle"
	"errors"
)

// APIKeyHeader is the request header carrying the shared secret.
const APIKeyHeader = "X-API-Key"

// ErrEmptySecret indicates a credential was configured without a secret.
var ErrEmptySecret = errors.New("api key secret must not be empty")

// Credential is the process-wide shared secret.
// It is immutable once created and safe for concurrent use.
type Credential struct {
	secret []byte
}

// NewCredential creates a Credential for the configured secret.
func NewCredential(secret string) (*Credential, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Credential{secret: []byte(secret)}, nil
}

// Matches reports whether supplied equals the secret exactly.
// The comparison is case-sensitive and runs in constant time for equal-length inputs.
func (c *Credential) Matches(supplied string) bool {
	if c == nil || supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), c.secret) == 1
}
