package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token lifetimes. Services may override both through configuration.
const (
	// DefaultAccessTokenTTL keeps bearer tokens short-lived.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshTokenTTL is how long a refresh cookie stays usable.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenType separates the two trust domains. A refresh token is never accepted
// where an access token is expected and vice versa.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Claims carry exactly one principal id (sub) and one role.
type Claims struct {
	jwt.RegisteredClaims

	Role string    `json:"role"`
	Type TokenType `json:"typ"`
}

// NewClaims builds claims for subject/role valid from now for ttl.
func NewClaims(
	subject, role string,
	typ TokenType,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role: role,
		Type: typ,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateShape rejects tokens that verified but do not carry a usable
// principal or were minted for the other token class.
func (c *Claims) ValidateShape(want TokenType) error {
	if c.Subject == "" || c.Role == "" {
		return ErrInvalidClaim
	}
	if c.Type != want {
		return ErrTokenType
	}
	return nil
}

// ExpiresAtTime returns the expiry or the zero time.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
