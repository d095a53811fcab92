package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsMatchesCode(t *testing.T) {
	err := fmt.Errorf("delete: %w", NewConflictError("protected"))

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, `Method "PUT" not allowed.`, NewMethodNotAllowedError("PUT").Error())
}

func TestValidationError(t *testing.T) {
	v := NewValidationError()
	assert.NoError(t, v.OrNil())

	v.Add("code", "This field is required.")
	v.Add("amount", "A valid number is required.")
	v.Add("amount", "Ensure this value is greater than or equal to 0.")

	assert.True(t, v.Has("code"))
	assert.Len(t, v.Fields["amount"], 2)
	assert.Equal(t,
		"validation failed: amount: A valid number is required. Ensure this value is greater than or equal to 0.; code: This field is required.",
		v.OrNil().Error())
}
