package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox-test")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "parol🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
			require.Len(t, strings.Split(hash, "$"), 6)

			require.NoError(t, VerifyPassword(tt.password, hash))
			require.ErrorIs(t, VerifyPassword(tt.password+"x", hash), ErrPasswordMismatch)
			require.False(t, NeedsRehash(hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("samepassword")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
}

func TestVerifyPassword_Bcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("secret1"), 7)
	require.NoError(t, err)

	require.NoError(t, VerifyPassword("secret1", string(legacy)))
	require.ErrorIs(t, VerifyPassword("secret2", string(legacy)), ErrPasswordMismatch)
	require.True(t, NeedsRehash(string(legacy)))
}

func TestVerifyPassword_BadFormat(t *testing.T) {
	for _, h := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
	} {
		require.ErrorIs(t, VerifyPassword("x", h), ErrHashFormat, h)
	}
}

func TestNeedsRehash_OldParams(t *testing.T) {
	require.True(t, NeedsRehash("$argon2id$v=19$m=4096,t=1,p=1$c2FsdA$aGFzaA"))
}

func TestPepperPersists(t *testing.T) {
	first := GetPepper()
	require.NotEmpty(t, first)

	// Re-pointing at the same file reloads the same pepper from disk.
	SetPepperPath(pepperFile)
	require.Equal(t, first, GetPepper())
}
