package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError_SingleField(t *testing.T) {
	err := NewValidationError("title", "is required")

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation: title: is required", err.Error())
}

func TestNewValidationErrors_MultipleFields(t *testing.T) {
	err := NewValidationErrors([]FieldError{
		{Field: "title", Message: "is required"},
		{Field: "tags", Message: "at least one tag is required"},
	})

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation: 2 errors", err.Error())

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Errors, 2)
}
