package otp

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/clinic/pkg/cryptox"
)

type entry struct {
	code      string
	expiresAt time.Time
	failures  int
}

// MemoryStore keeps codes in process memory. Expiry is evaluated lazily on
// access; Sweep reclaims entries nobody came back for.
type MemoryStore struct {
	mu          sync.Mutex
	entries     map[string]entry
	now         func() time.Time
	maxAttempts int
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	o := buildOptions(opts)
	return &MemoryStore{
		entries:     make(map[string]entry),
		now:         o.now,
		maxAttempts: o.maxAttempts,
	}
}

func (s *MemoryStore) Set(_ context.Context, key, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{code: code, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(key)
	if !ok {
		return "", ErrMiss
	}
	return e.code, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) Consume(_ context.Context, key, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(key)
	if !ok {
		return ErrMiss
	}
	if !cryptox.Equal(e.code, code) {
		e.failures++
		if e.failures >= s.maxAttempts {
			delete(s.entries, key)
		} else {
			s.entries[key] = e
		}
		return ErrMismatch
	}
	delete(s.entries, key)
	return nil
}

// Sweep drops every expired entry and reports how many went.
func (s *MemoryStore) Sweep(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
			n++
		}
	}
	return n, nil
}

// Len counts stored entries, live or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// live must be called with mu held.
func (s *MemoryStore) live(key string) (entry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return entry{}, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return entry{}, false
	}
	return e, true
}
