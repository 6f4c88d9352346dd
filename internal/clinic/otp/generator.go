package otp

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"fmt"

	pqotp "github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

// DefaultDigits is the length of issued codes.
const DefaultDigits = 6

// Generator produces numeric one-time codes. Each code is an HOTP value over
// a fresh random secret and counter, so codes are uniform and unpredictable.
type Generator struct {
	Digits int
}

func NewGenerator(digits int) (*Generator, error) {
	if digits == 0 {
		digits = DefaultDigits
	}
	if digits < 4 || digits > 8 {
		return nil, fmt.Errorf("otp: digits must be between 4 and 8, got %d", digits)
	}
	return &Generator{Digits: digits}, nil
}

func (g *Generator) Generate() (string, error) {
	var buf [28]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("otp: entropy: %w", err)
	}

	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf[:20])
	counter := binary.BigEndian.Uint64(buf[20:])

	code, err := hotp.GenerateCodeCustom(secret, counter, hotp.ValidateOpts{
		Digits:    pqotp.Digits(g.Digits),
		Algorithm: pqotp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("otp: generate: %w", err)
	}
	return code, nil
}
