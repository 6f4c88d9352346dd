package otp_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/otp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startRedis runs a throwaway Redis and returns a client for it.
func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	client := startRedis(t)
	s := otp.NewRedisStore(client, "test:otp:")
	ctx := context.Background()

	t.Run("set get delete", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "admin:root", "123456", time.Minute))

		code, err := s.Get(ctx, "admin:root")
		require.NoError(t, err)
		require.Equal(t, "123456", code)

		// Stored under the prefix.
		require.Equal(t, "123456", client.Get(ctx, "test:otp:admin:root").Val())

		require.NoError(t, s.Delete(ctx, "admin:root"))
		_, err = s.Get(ctx, "admin:root")
		require.ErrorIs(t, err, otp.ErrMiss)
	})

	t.Run("consume", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "doctor:+998901234567", "123456", time.Minute))

		require.ErrorIs(t, s.Consume(ctx, "doctor:+998901234567", "654321"), otp.ErrMismatch)
		require.NoError(t, s.Consume(ctx, "doctor:+998901234567", "123456"))
		require.ErrorIs(t, s.Consume(ctx, "doctor:+998901234567", "123456"), otp.ErrMiss)
	})

	t.Run("max attempts", func(t *testing.T) {
		limited := otp.NewRedisStore(client, "test:otp:", otp.WithMaxAttempts(3))
		require.NoError(t, limited.Set(ctx, "patient:+998901234567", "123456", time.Minute))

		for range 3 {
			require.ErrorIs(t, limited.Consume(ctx, "patient:+998901234567", "000000"), otp.ErrMismatch)
		}
		require.ErrorIs(t, limited.Consume(ctx, "patient:+998901234567", "123456"), otp.ErrMiss)
		require.Zero(t, client.Exists(ctx, "test:otp:patient:+998901234567:attempts").Val())
	})

	t.Run("set resets attempts", func(t *testing.T) {
		limited := otp.NewRedisStore(client, "test:otp:", otp.WithMaxAttempts(2))
		require.NoError(t, limited.Set(ctx, "admin:ops", "123456", time.Minute))
		require.ErrorIs(t, limited.Consume(ctx, "admin:ops", "000000"), otp.ErrMismatch)
		require.True(t, client.PTTL(ctx, "test:otp:admin:ops:attempts").Val() > 0, "attempt counter expires with the code")

		require.NoError(t, limited.Set(ctx, "admin:ops", "654321", time.Minute))
		require.ErrorIs(t, limited.Consume(ctx, "admin:ops", "000000"), otp.ErrMismatch)
		require.NoError(t, limited.Consume(ctx, "admin:ops", "654321"))
	})

	t.Run("ttl expiry", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "short", "1", 100*time.Millisecond))
		require.Eventually(t, func() bool {
			_, err := s.Get(ctx, "short")
			return err == otp.ErrMiss
		}, 3*time.Second, 50*time.Millisecond)
	})

	require.NoError(t, s.Ping(ctx))
}
