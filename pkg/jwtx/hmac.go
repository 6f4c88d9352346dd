package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret accepted (256 bits of text).
const MinSecretLength = 32

// HMACSigner signs HS256 tokens with a single shared secret.
type HMACSigner struct {
	secret []byte
}

func NewHMACSigner(secret string) (*HMACSigner, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	return &HMACSigner{secret: []byte(secret)}, nil
}

func (s *HMACSigner) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (s *HMACSigner) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(s.secret)
}

// HMACVerifier verifies HS256 tokens of one TokenType against one secret.
type HMACVerifier struct {
	secret []byte
	typ    TokenType
	opts   VerifyOptions
	parser *jwt.Parser
}

func NewHMACVerifier(secret string, typ TokenType, opts VerifyOptions) (*HMACVerifier, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &HMACVerifier{
		secret: []byte(secret),
		typ:    typ,
		opts:   opts,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(opts.Leeway),
			jwt.WithTimeFunc(now),
		),
	}, nil
}

// Verify checks signature first and then the time-based claims, so a token
// signed with the right key but past its expiry always yields ErrExpired.
func (v *HMACVerifier) Verify(token string) (Claims, error) {
	var c Claims
	_, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if err := c.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := c.ValidateShape(v.typ); err != nil {
		return Claims{}, err
	}

	return c, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ErrInvalidClaim
	default:
		return ErrMalformed
	}
}
