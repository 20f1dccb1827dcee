package service

import "time"

// ResetTokenDeriver computes the stateless, date-bound password reset token.
type ResetTokenDeriver interface {
	// Derive returns the token for the subject as of the current UTC date.
	Derive(subjectID int64, email string) string

	// Matches recomputes the token for today and compares it in constant time.
	Matches(subjectID int64, email, presented string) bool

	// ValidUntil returns the instant at which tokens derived now stop matching.
	ValidUntil() time.Time
}
