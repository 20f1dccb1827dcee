package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AccessGate decides whether a caller may proceed.
// Authorization is only meaningful for a principal Authenticate produced.
type AccessGate interface {
	// Authenticate validates an identity token and returns the caller it names.
	Authenticate(ctx context.Context, rawToken string) (*entity.Principal, error)

	// AuthorizeAdmin loads the principal's user on every call and requires the admin flag.
	AuthorizeAdmin(ctx context.Context, principal *entity.Principal) (*entity.User, error)
}
