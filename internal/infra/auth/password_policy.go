package auth

import (
	"unicode"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

const defaultMaxPasswordLength = 128

// strengthPolicy enforces the passwordStrength section of the configuration.
type strengthPolicy struct {
	cfg config.PasswordStrengthConfig
}

// NewPasswordPolicy builds the policy from configuration. A missing section only bounds the length.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policy := &strengthPolicy{}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy.cfg = *cfg.PasswordStrength
	}
	if policy.cfg.MinLength <= 0 {
		policy.cfg.MinLength = 1
	}
	if policy.cfg.MaxLength <= 0 {
		policy.cfg.MaxLength = defaultMaxPasswordLength
	}

	return policy
}

func (p *strengthPolicy) Validate(password string) error {
	length := len([]rune(password))
	if length < p.cfg.MinLength || length > p.cfg.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("length out of range")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case p.cfg.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("missing uppercase letter")
	case p.cfg.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("missing lowercase letter")
	case p.cfg.RequireNumbers && !hasNumber:
		return domainerrors.ErrPasswordStrength.WithDetails("missing digit")
	case p.cfg.RequireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("missing special character")
	}

	return nil
}
