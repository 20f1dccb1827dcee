package service

// CredentialHasher turns plaintext secrets into StoredCredential strings and checks candidates against them.
// Salt, key length and iteration count are fixed by the implementation, never supplied by callers.
type CredentialHasher interface {
	// Hash returns base64(salt) + ":" + base64(derivedKey) for a freshly drawn salt.
	Hash(plaintext string) (string, error)

	// Verify reports whether candidate matches stored. Malformed stored values yield false.
	Verify(stored, candidate string) bool
}

// PasswordPolicy validates plaintext passwords before they are hashed.
type PasswordPolicy interface {
	Validate(password string) error
}
