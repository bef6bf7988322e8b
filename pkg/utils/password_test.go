package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPassword_ProducesUniqueHashes(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	// bcrypt salts internally, so equal inputs hash differently
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPasswordHash("secret1", h1))
	assert.True(t, CheckPasswordHash("secret1", h2))
}

func TestHashPassword_OverLengthLimit(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes; this must surface as an
	// error, not as a credential mismatch
	_, err := HashPassword(strings.Repeat("a", 100))
	assert.Error(t, err)
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret1", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("secret1", ""))
}
