// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether any user already uses the email or the username.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// List returns every user ordered by ID.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity and fills in its generated ID.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored credential of a user.
	// It returns ErrUserNotFound when no row matches.
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error

	// Delete removes a user. It returns ErrUserNotFound when no row matches.
	Delete(ctx context.Context, id int64) error
}
