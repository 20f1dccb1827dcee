// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// DeletedUserID is written into orders.user_id when the owning user is removed.
// Orders outlive their owner and point at this sentinel instead.
const DeletedUserID int64 = 0

// User is an account of the shop. It is the principal record behind every identity token.
type User struct {
	ID           int64     // Primary key, also carried as the UserId claim.
	Username     string    // Login name, unique.
	Email        string    // Contact address, unique. Feeds the reset token derivation.
	PasswordHash string    // StoredCredential: base64(salt):base64(key). Never the plaintext.
	IsAdmin      bool      // Role flag checked by the admin gate on every request.
	CreatedAt    time.Time // Registration time.
}

// Principal is the caller identity established from a verified identity token.
// It is passed explicitly to every use case that acts on behalf of a caller.
type Principal struct {
	UserID  int64
	TokenID string
}
