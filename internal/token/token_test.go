package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	provider := NewProvider("test-secret", time.Hour)

	signed, err := provider.Issue("alice", []string{"ROLE_USER", "ROLE_ADMIN"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := provider.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, claims.Roles)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseExpired(t *testing.T) {
	provider := NewProvider("test-secret", -time.Minute)

	signed, err := provider.Issue("alice", []string{"ROLE_USER"})
	require.NoError(t, err)

	_, err = provider.Parse(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := NewProvider("secret-a", time.Hour).Issue("alice", nil)
	require.NoError(t, err)

	_, err = NewProvider("secret-b", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseGarbage(t *testing.T) {
	provider := NewProvider("test-secret", time.Hour)

	_, err := provider.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = provider.Parse("")
	assert.ErrorIs(t, err, ErrMalformed)
}
