package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

func TestPBKDF2Hasher_HashAndVerify(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	password := "Secret1"

	stored, err := hasher.Hash(password)
	require.NoError(t, err)

	parts := strings.Split(stored, ":")
	require.Len(t, parts, 2)

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Len(t, salt, 16)

	key, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, key, 32)

	assert.True(t, hasher.Verify(stored, password))
	assert.False(t, hasher.Verify(stored, "Secret2"))
	assert.False(t, hasher.Verify(stored, ""))
}

func TestPBKDF2Hasher_SaltIsRandom(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	first, err := hasher.Hash("Secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("Secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(first, "Secret1"))
	assert.True(t, hasher.Verify(second, "Secret1"))
}

func TestPBKDF2Hasher_MatchesReferenceDerivation(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt := []byte("0123456789abcdef")
	key := pbkdf2.Key([]byte("Secret1"), salt, 10000, 32, sha256.New)
	stored := base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(key)

	assert.True(t, hasher.Verify(stored, "Secret1"))
}

func TestPBKDF2Hasher_VerifyRejectsMalformed(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	valid, err := hasher.Hash("Secret1")
	require.NoError(t, err)
	parts := strings.Split(valid, ":")

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "no separator", stored: parts[0] + parts[1]},
		{name: "two separators", stored: parts[0] + ":" + parts[1] + ":" + parts[1]},
		{name: "salt not base64", stored: "%%%%:" + parts[1]},
		{name: "key not base64", stored: parts[0] + ":%%%%"},
		{name: "short salt", stored: base64.StdEncoding.EncodeToString([]byte("short")) + ":" + parts[1]},
		{name: "short key", stored: parts[0] + ":" + base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "empty parts", stored: ":"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, hasher.Verify(tt.stored, "Secret1"))
			})
		})
	}
}
