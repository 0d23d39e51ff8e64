package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorRequired(t *testing.T) {
	v := NewValidator().Field("name", "  ", Required)
	require.True(t, v.HasErrors())
	assert.Contains(t, v.ErrorMessage(), "name")

	assert.False(t, NewValidator().Field("name", "library", Required).HasErrors())
}

func TestValidatorUUID(t *testing.T) {
	v := NewValidator().Field("profile_id", "not-a-uuid", UUID)
	require.True(t, v.HasErrors())
	assert.Contains(t, v.ErrorMessage(), "valid UUID")

	ok := NewValidator().Field("profile_id", "7c9e6679-7425-40de-944b-e07fc1f90ae7", UUID)
	assert.False(t, ok.HasErrors())

	err := ValidateAndReturnError(v)
	require.Error(t, err)
}

func TestValidatorMaxLength(t *testing.T) {
	rule := func(field string, value interface{}) *ValidationError {
		return MaxLength(field, value, 3)
	}
	assert.True(t, NewValidator().Field("name", "abcd", rule).HasErrors())
	assert.False(t, NewValidator().Field("name", "abc", rule).HasErrors())
}
