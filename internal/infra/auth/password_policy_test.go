package auth

import (
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicy_Validate(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        6,
			MaxLength:        20,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "strong", password: "Secret1!", wantErr: false},
		{name: "too short", password: "Se1!", wantErr: true},
		{name: "too long", password: "Secret1!Secret1!Secret1!", wantErr: true},
		{name: "no upper", password: "secret1!", wantErr: true},
		{name: "no lower", password: "SECRET1!", wantErr: true},
		{name: "no digit", password: "Secret!!", wantErr: true},
		{name: "no special", password: "Secret11", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, "PASSWORD_STRENGTH", appErr.ErrorCode())
		})
	}
}

func TestPasswordPolicy_DefaultsWithoutConfig(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{})

	assert.NoError(t, policy.Validate("a"))
	assert.Error(t, policy.Validate(""))
}
