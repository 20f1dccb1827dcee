// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

// Parameters of the stored credential format. They are constants so stored
// hashes cannot be downgraded through configuration.
const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLength  = 32
	pbkdf2SaltLength = 16

	credentialSeparator = ":"
)

// pbkdf2Hasher is a concrete implementation of the CredentialHasher interface using PBKDF2-HMAC-SHA256.
type pbkdf2Hasher struct{}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.CredentialHasher interface.
func NewPBKDF2Hasher() service.CredentialHasher {
	return &pbkdf2Hasher{}
}

// Hash derives a key from the plaintext with a fresh random salt and encodes both parts.
func (h *pbkdf2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, pbkdf2SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to read salt")
	}

	key := deriveKey(plaintext, salt)

	return base64.StdEncoding.EncodeToString(salt) + credentialSeparator + base64.StdEncoding.EncodeToString(key), nil
}

// Verify recomputes the key for candidate with the stored salt and compares in constant time.
func (h *pbkdf2Hasher) Verify(stored, candidate string) bool {
	parts := strings.Split(stored, credentialSeparator)
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(salt) != pbkdf2SaltLength {
		return false
	}

	expected, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(expected) != pbkdf2KeyLength {
		return false
	}

	return subtle.ConstantTimeCompare(deriveKey(candidate, salt), expected) == 1
}

func deriveKey(plaintext string, salt []byte) []byte {
	return pbkdf2.Key([]byte(plaintext), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
}
