package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("mona@example.com", "Mona Hassan", "user")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "mona@example.com", claims.Email)
	require.Equal(t, "Mona Hassan", claims.Name)
	require.Equal(t, "user", claims.Role)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := auth.ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestCheckPasswordPlaintext(t *testing.T) {
	// Default mode stores credentials verbatim.
	stored, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	require.Equal(t, "secret1", stored)

	require.True(t, auth.CheckPassword(stored, "secret1"))
	require.False(t, auth.CheckPassword(stored, "other"))
}

func TestCheckPasswordBcrypt(t *testing.T) {
	// A "$2..." record is verified with bcrypt regardless of mode.
	hashed := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // "password"
	require.True(t, auth.CheckPassword(hashed, "password"))
	require.False(t, auth.CheckPassword(hashed, "nope"))
}
