package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `validate:"required,email"`
	Quantity int    `validate:"gt=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Email: "a@example.com", Quantity: 1}))

	err := v.Validate(&sample{Email: "nope"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "Email failed on email")
	assert.Contains(t, appErr.Details(), "Quantity failed on gt")
}
