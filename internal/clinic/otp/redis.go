package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces OTP keys in a shared Redis.
const DefaultRedisPrefix = "clinic:otp:"

// consumeScript returns 1 on match (and deletes), 0 when absent, -1 on
// mismatch. KEYS[2] counts mismatches with the code's TTL; reaching ARGV[2]
// deletes both keys.
var consumeScript = redis.NewScript(`
	local v = redis.call('GET', KEYS[1])
	if not v then
		return 0
	end
	if v ~= ARGV[1] then
		local n = redis.call('INCR', KEYS[2])
		if n == 1 then
			local ttl = redis.call('PTTL', KEYS[1])
			if ttl > 0 then
				redis.call('PEXPIRE', KEYS[2], ttl)
			end
		end
		if n >= tonumber(ARGV[2]) then
			redis.call('DEL', KEYS[1], KEYS[2])
		end
		return -1
	end
	redis.call('DEL', KEYS[1], KEYS[2])
	return 1
`)

// RedisStore keeps codes in Redis so several replicas share one OTP space.
// Expiry is Redis' own key TTL.
type RedisStore struct {
	client      redis.UniversalClient
	prefix      string
	maxAttempts int
}

func NewRedisStore(client redis.UniversalClient, prefix string, opts ...Option) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	o := buildOptions(opts)
	return &RedisStore{client: client, prefix: prefix, maxAttempts: o.maxAttempts}
}

func (s *RedisStore) key(k string) string { return s.prefix + k }

func (s *RedisStore) attemptsKey(k string) string { return s.prefix + k + ":attempts" }

// Set replaces the code and resets its mismatch count.
func (s *RedisStore) Set(ctx context.Context, key, code string, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(key), code, ttl)
		pipe.Del(ctx, s.attemptsKey(key))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis otp: set: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	code, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis otp: get: %w", err)
	}
	return code, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key), s.attemptsKey(key)).Err(); err != nil {
		return fmt.Errorf("redis otp: delete: %w", err)
	}
	return nil
}

func (s *RedisStore) Consume(ctx context.Context, key, code string) error {
	res, err := consumeScript.Run(ctx, s.client,
		[]string{s.key(key), s.attemptsKey(key)},
		code, s.maxAttempts,
	).Int()
	if err != nil {
		return fmt.Errorf("redis otp: consume: %w", err)
	}

	switch res {
	case 1:
		return nil
	case -1:
		return ErrMismatch
	default:
		return ErrMiss
	}
}

// Ping lets readiness checks cover the cache.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
