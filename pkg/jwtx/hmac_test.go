package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	accessSecret  = "access-secret-access-secret-0123456789"
	refreshSecret = "refresh-secret-refresh-secret-0123456789"
)

func newPair(t *testing.T, now func() time.Time) (*jwtx.HMACSigner, *jwtx.HMACVerifier) {
	t.Helper()

	signer, err := jwtx.NewHMACSigner(accessSecret)
	require.NoError(t, err)

	verifier, err := jwtx.NewHMACVerifier(accessSecret, jwtx.TokenAccess, jwtx.VerifyOptions{
		Issuer: "clinic",
		Now:    now,
	})
	require.NoError(t, err)

	return signer, verifier
}

func TestHMAC_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now()
	signer, verifier := newPair(t, nil)
	require.Equal(t, "HS256", signer.Alg())

	token, err := signer.Sign(jwtx.NewClaims("01HXDOC", "doctor", jwtx.TokenAccess, time.Minute, "clinic", now))
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01HXDOC", claims.Subject)
	require.Equal(t, "doctor", claims.Role)
	require.Equal(t, jwtx.TokenAccess, claims.Type)
}

func TestHMAC_Expired(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-time.Hour)
	signer, verifier := newPair(t, nil)

	token, err := signer.Sign(jwtx.NewClaims("01HX", "admin", jwtx.TokenAccess, 15*time.Minute, "clinic", issued))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
	require.NotErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHMAC_ClockInjection(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	current := issued.Add(10 * time.Minute)
	signer, verifier := newPair(t, func() time.Time { return current })

	token, err := signer.Sign(jwtx.NewClaims("01HX", "admin", jwtx.TokenAccess, 15*time.Minute, "clinic", issued))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.NoError(t, err)

	current = issued.Add(16 * time.Minute)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestHMAC_WrongSecret(t *testing.T) {
	t.Parallel()

	refreshSigner, err := jwtx.NewHMACSigner(refreshSecret)
	require.NoError(t, err)
	_, accessVerifier := newPair(t, nil)

	token, err := refreshSigner.Sign(jwtx.NewClaims("01HX", "patient", jwtx.TokenAccess, time.Minute, "clinic", time.Now()))
	require.NoError(t, err)

	_, err = accessVerifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHMAC_Tampered(t *testing.T) {
	t.Parallel()

	signer, verifier := newPair(t, nil)
	token, err := signer.Sign(jwtx.NewClaims("01HX", "patient", jwtx.TokenAccess, time.Minute, "clinic", time.Now()))
	require.NoError(t, err)

	// Swap the payload for one claiming superadmin, keep the old signature.
	parts := strings.Split(token, ".")
	forged, err := signer.Sign(jwtx.NewClaims("01HX", "superadmin", jwtx.TokenAccess, time.Minute, "clinic", time.Now()))
	require.NoError(t, err)
	parts[1] = strings.Split(forged, ".")[1]

	_, err = verifier.Verify(strings.Join(parts[:2], ".") + "." + strings.Split(token, ".")[2])
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHMAC_Malformed(t *testing.T) {
	t.Parallel()

	_, verifier := newPair(t, nil)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := verifier.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", raw)
	}
}

func TestHMAC_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	_, verifier := newPair(t, nil)

	claims := jwtx.NewClaims("01HX", "admin", jwtx.TokenAccess, time.Minute, "clinic", time.Now())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(accessSecret))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(none)
	require.Error(t, err)
}

func TestHMAC_TokenTypeAndIssuer(t *testing.T) {
	t.Parallel()

	signer, verifier := newPair(t, nil)

	refreshShaped, err := signer.Sign(jwtx.NewClaims("01HX", "admin", jwtx.TokenRefresh, time.Minute, "clinic", time.Now()))
	require.NoError(t, err)
	_, err = verifier.Verify(refreshShaped)
	require.ErrorIs(t, err, jwtx.ErrTokenType)

	foreign, err := signer.Sign(jwtx.NewClaims("01HX", "admin", jwtx.TokenAccess, time.Minute, "elsewhere", time.Now()))
	require.NoError(t, err)
	_, err = verifier.Verify(foreign)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestHMAC_WeakSecret(t *testing.T) {
	_, err := jwtx.NewHMACSigner("short")
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = jwtx.NewHMACVerifier("short", jwtx.TokenAccess, jwtx.VerifyOptions{})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}
