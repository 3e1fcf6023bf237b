package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	s := NewHMACService("secret", "sitebuilder", time.Hour)

	tok, err := s.GenerateAdminToken("admin1@yourdomain.com")
	require.NoError(t, err)

	c, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin1@yourdomain.com", c.Email)
	assert.Equal(t, RoleAdmin, c.Role)
	assert.NotEmpty(t, c.ID)
}

func TestHMACService_Expired(t *testing.T) {
	s := NewHMACService("secret", "sitebuilder", time.Minute)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	tok, err := s.GenerateAdminToken("a@x.io")
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = s.ValidateToken(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_RejectsForeignTokens(t *testing.T) {
	a := NewHMACService("secret-a", "sitebuilder", time.Hour)
	b := NewHMACService("secret-b", "sitebuilder", time.Hour)
	other := NewHMACService("secret-a", "elsewhere", time.Hour)

	tok, err := a.GenerateAdminToken("a@x.io")
	require.NoError(t, err)

	_, err = b.ValidateToken(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
	_, err = other.ValidateToken(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
	_, err = a.ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_RequiresSecretAndEmail(t *testing.T) {
	_, err := NewHMACService("", "x", time.Hour).GenerateAdminToken("a@x.io")
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("s", "x", time.Hour).GenerateAdminToken("")
	require.ErrorIs(t, err, ErrTokenInvalid)

	assert.Len(t, RandomSecret(), 64)
}
