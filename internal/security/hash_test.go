package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multipoles-backend/internal/security"
)

func TestHashSecret_CompareSecret(t *testing.T) {
	hash, err := security.HashSecret("P@ssw0rd123")
	require.NoError(t, err)

	assert.NotEqual(t, "P@ssw0rd123", hash)
	assert.True(t, security.CompareSecret("P@ssw0rd123", hash))
	assert.False(t, security.CompareSecret("p@ssw0rd123", hash))
	assert.False(t, security.CompareSecret("", hash))
}

func TestHashSecret_Salted(t *testing.T) {
	first, err := security.HashSecret("same-input")
	require.NoError(t, err)
	second, err := security.HashSecret("same-input")
	require.NoError(t, err)

	// bcrypt salts every hash, equal inputs still differ.
	assert.NotEqual(t, first, second)
	assert.True(t, security.CompareSecret("same-input", first))
	assert.True(t, security.CompareSecret("same-input", second))
}

func TestCompareSecret_RejectsBadHash(t *testing.T) {
	assert.False(t, security.CompareSecret("anything", "not-a-bcrypt-hash"))
}
