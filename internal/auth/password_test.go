package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("password1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "password1", hash)
	assert.True(t, CheckPassword("password1", hash))
	assert.False(t, CheckPassword("password2", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("password1", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("password1", bcrypt.MinCost)
	require.NoError(t, err)

	// Per-call random salt: identical inputs must not produce identical
	// hashes, so stored hashes can never be compared directly.
	assert.NotEqual(t, first, second)
}

func TestHashPasswordClampsBadCost(t *testing.T) {
	hash, err := HashPassword("password1", 9999)
	require.NoError(t, err)
	assert.True(t, CheckPassword("password1", hash))
}
