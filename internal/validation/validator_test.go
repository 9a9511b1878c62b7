package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("hello"))
	assert.True(t, v.IsNonEmptyString("  padded  "))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString("   "))
	assert.False(t, v.IsNonEmptyString("\t\n"))
}

func TestValidator_IsValidDate(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidDate("2024-05-03"))
	assert.True(t, v.IsValidDate(" 2024-05-03 "))
	assert.False(t, v.IsValidDate("2024-13-01"))
	assert.False(t, v.IsValidDate("03/05/2024"))
	assert.False(t, v.IsValidDate("not a date"))
	assert.False(t, v.IsValidDate(""))
}

func TestValidator_IsPositiveNumber(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsPositiveNumber("8"))
	assert.True(t, v.IsPositiveNumber("7.5"))
	assert.True(t, v.IsPositiveNumber(" 2 "))
	assert.False(t, v.IsPositiveNumber("0"))
	assert.False(t, v.IsPositiveNumber("-1"))
	assert.False(t, v.IsPositiveNumber("abc"))
	assert.False(t, v.IsPositiveNumber(""))
}

func TestValidator_IsNonNegativeNumber(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonNegativeNumber("0"))
	assert.True(t, v.IsNonNegativeNumber("1.5"))
	assert.False(t, v.IsNonNegativeNumber("-0.5"))
	assert.False(t, v.IsNonNegativeNumber("x"))
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	v := NewValidator()

	assert.Equal(t, "trimmed", v.TrimAndValidateString("  trimmed  "))
	assert.Equal(t, "", v.TrimAndValidateString("   "))
}
