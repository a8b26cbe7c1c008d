package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"046-454-286", "046454286"},
		{" 123 45 6789 ", "123456789"},
		{"abc", ""},
		{"", ""},
		{"１２３", ""}, // full-width digits are not ASCII
		{"4\x005", "45"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw), tt.raw)
	}
}

func TestFormatGroups(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		sizes []int
		want  string
	}{
		{"sin", "046454286", []int{3, 3, 3}, "046-454-286"},
		{"ssn", "123456789", []int{3, 2, 4}, "123-45-6789"},
		{"already formatted", "123-45-6789", []int{3, 2, 4}, "123-45-6789"},
		{"short", "12345", []int{3, 3, 3}, "123-45-"},
		{"very short", "12", []int{3, 2, 4}, "12--"},
		{"empty", "", []int{3, 3, 3}, "--"},
		{"long", "1234567890", []int{3, 3, 3}, "123-456-789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGroups(tt.raw, tt.sizes...))
		})
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "***-**-6789", Mask("123-45-6789"))
	assert.Equal(t, "*****4286", Mask("046454286"))
	assert.Equal(t, "6789", Mask("6789"))
	assert.Equal(t, "", Mask(""))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "", ErrorNone.String())
	assert.Equal(t, "invalid_length", ErrorInvalidLength.String())
	assert.Equal(t, "invalid_check_digit", ErrorInvalidCheckDigit.String())
	assert.Equal(t, "invalid_area_number", ErrorInvalidAreaNumber.String())
	assert.Equal(t, "invalid_group_code", ErrorInvalidGroupCode.String())
	assert.Equal(t, "invalid_serial_number", ErrorInvalidSerialNumber.String())
	assert.Equal(t, "unknown", ErrorKind(42).String())
}
