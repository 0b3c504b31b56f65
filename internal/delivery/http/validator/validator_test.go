package validator

import (
	"testing"

	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title string `json:"title" validate:"required,max=5"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&payload{Title: "ok"}))

	err := v.Validate(&payload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "title is required")

	err = v.Validate(&payload{Title: "too long"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.KindBadRequest, appErr.Kind())
	assert.Contains(t, appErr.Message(), "title must be at most 5 characters")
}
