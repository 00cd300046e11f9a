package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSecretRoundTrip(t *testing.T) {
	salt, hash, err := HashSecret("s3cr3t!")
	require.NoError(t, err)
	require.NotEmpty(t, salt)
	require.NotEmpty(t, hash)

	assert.True(t, VerifySecret("s3cr3t!", salt, hash))
	assert.False(t, VerifySecret("s3cr3t!x", salt, hash))
	assert.False(t, VerifySecret("", salt, hash))
}

func TestHashSecretUniqueSalts(t *testing.T) {
	salt1, hash1, err := HashSecret("same-secret")
	require.NoError(t, err)
	salt2, hash2, err := HashSecret("same-secret")
	require.NoError(t, err)

	// A fresh salt per call means identical secrets never share a hash
	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestVerifySecretRejectsMalformedStoredValues(t *testing.T) {
	assert.False(t, VerifySecret("secret", "not base64 !!!", "also not base64 !!!"))
	assert.False(t, VerifySecret("secret", "", ""))
}

func TestHashTokenDeterministic(t *testing.T) {
	assert.Equal(t, HashToken("token-a"), HashToken("token-a"))
	assert.NotEqual(t, HashToken("token-a"), HashToken("token-b"))
	assert.NotEmpty(t, HashToken(""))
}
