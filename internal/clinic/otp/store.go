// Package otp holds the one-time-password cache used by the sign-in flow and
// the code generator that feeds it.
package otp

//go:generate mockgen -source=store.go -destination=otpmock/mock_store.go -package=otpmock

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is how long an issued code stays valid.
const DefaultTTL = 3 * time.Minute

// DefaultMaxAttempts is how many wrong guesses an issued code survives.
const DefaultMaxAttempts = 5

var (
	// ErrMiss means there is no live code for the key. Absent and expired are
	// deliberately indistinguishable.
	ErrMiss = errors.New("otp: no live code")

	// ErrMismatch means a live code exists but the supplied one differs.
	ErrMismatch = errors.New("otp: code mismatch")
)

// Store is a short-TTL key/value cache for OTP codes. Implementations must be
// safe for concurrent use; a Set on an existing key replaces it (last write
// wins) and resets its mismatch count.
type Store interface {
	Set(ctx context.Context, key, code string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error

	// Consume atomically checks code against the live entry and deletes the
	// entry on a match, so a code can succeed at most once. A mismatch counts
	// against the entry; the mismatch that exhausts its attempts deletes it.
	Consume(ctx context.Context, key, code string) error
}

type options struct {
	now         func() time.Time
	maxAttempts int
}

// Option configures a Store implementation.
type Option func(*options)

// WithClock replaces time.Now, for tests. Only the memory store keeps time
// itself.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithMaxAttempts sets how many mismatches an entry survives. Values below
// one keep the default.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Key namespaces an identifier (phone number or username) by sign-in kind.
func Key(kind, identifier string) string {
	return kind + ":" + identifier
}
