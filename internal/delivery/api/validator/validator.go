// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates bound request bodies.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports failures as ErrValidationFailed.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields = append(fields, fieldErr.Field()+" failed on "+fieldErr.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
}
