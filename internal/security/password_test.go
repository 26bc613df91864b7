package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesUniqueDigests(t *testing.T) {
	first, err := HashPassword("password1")
	require.NoError(t, err)
	second, err := HashPassword("password1")
	require.NoError(t, err)

	assert.NotEqual(t, "password1", first)
	assert.NotEqual(t, first, second, "salt should differ per call")
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("password1")
	require.NoError(t, err)

	assert.True(t, CheckPassword("password1", digest))
	assert.False(t, CheckPassword("password2", digest))
	assert.False(t, CheckPassword("", digest))
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("password1", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("password1", ""))
}
