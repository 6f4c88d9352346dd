package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "clinic",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("clinic"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("billing")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestValidateShape(t *testing.T) {
	now := time.Now()

	t.Run("access claims", func(t *testing.T) {
		c := jwtx.NewClaims("01HX", "doctor", jwtx.TokenAccess, time.Minute, "clinic", now)
		require.NoError(t, c.ValidateShape(jwtx.TokenAccess))
	})

	t.Run("wrong class", func(t *testing.T) {
		c := jwtx.NewClaims("01HX", "doctor", jwtx.TokenRefresh, time.Minute, "clinic", now)
		require.ErrorIs(t, c.ValidateShape(jwtx.TokenAccess), jwtx.ErrTokenType)
	})

	t.Run("missing role", func(t *testing.T) {
		c := jwtx.NewClaims("01HX", "", jwtx.TokenAccess, time.Minute, "clinic", now)
		require.ErrorIs(t, c.ValidateShape(jwtx.TokenAccess), jwtx.ErrInvalidClaim)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := jwtx.NewClaims("", "admin", jwtx.TokenAccess, time.Minute, "clinic", now)
		require.ErrorIs(t, c.ValidateShape(jwtx.TokenAccess), jwtx.ErrInvalidClaim)
	})
}

func TestNewClaims(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewClaims("01HX", "patient", jwtx.TokenRefresh, jwtx.DefaultRefreshTokenTTL, "clinic", now)

	require.Equal(t, "01HX", c.Subject)
	require.Equal(t, "patient", c.Role)
	require.Equal(t, jwtx.TokenRefresh, c.Type)
	require.Equal(t, now.Add(7*24*time.Hour), c.ExpiresAtTime())
	require.NotEmpty(t, c.ID)
	require.NotEqual(t, c.ID, jwtx.NewJTI())
}
