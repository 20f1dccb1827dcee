package service

import (
	"time"
)

// TokenClaims is the verified content of a signed token.
// Values holds exactly the claims passed to Issue; registered claims live in the other fields.
type TokenClaims struct {
	Values    map[string]string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Get returns the named claim and whether it is present and non-empty.
func (c *TokenClaims) Get(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.Values[name]

	return v, ok && v != ""
}

// TokenCodec issues and validates signed, time-bounded tokens.
// Issue returns the token together with the expiry encoded in it.
// Validate fails with domain errors ErrTokenMalformed, ErrTokenSignatureInvalid or ErrTokenExpired.
type TokenCodec interface {
	Issue(claims map[string]string, ttl time.Duration) (string, time.Time, error)
	Validate(token string) (*TokenClaims, error)
}
