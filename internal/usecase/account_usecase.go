// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// ResetPasswordInput carries a reset token redemption.
type ResetPasswordInput struct {
	UserID      int64
	ResetToken  string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the identity token issued after a successful login.
type LoginOutput struct {
	IdentityToken string
	ExpiresAt     time.Time
	User          *entity.User
}

// ForgotPasswordOutput describes a reset request. ResetToken is only set when exposing it is enabled.
type ForgotPasswordOutput struct {
	UserID     int64
	ResetToken string
	ValidUntil time.Time
}

// AccountUsecase covers the anonymous account flows.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ForgotPassword derives the reset token of the account owning email and publishes it for delivery.
	ForgotPassword(ctx context.Context, email string) (*ForgotPasswordOutput, error)

	// ResetPassword replaces the credential when the presented token matches today's derivation.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
