package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	match, err := ComparePasswords(hash, "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = ComparePasswords(hash, "wrong-pass")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHashPassword_FormatAndSaltUniqueness(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	parts := strings.SplitN(first, ".", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 128) // 64-byte key, hex
	assert.Len(t, parts[1], 32)  // 16-byte salt, hex

	assert.NotEqual(t, first, second)
}

func TestComparePasswords_MalformedStored(t *testing.T) {
	_, err := ComparePasswords("not-a-valid-hash", "whatever")
	assert.Error(t, err)
}
