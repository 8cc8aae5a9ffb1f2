package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"sixteen digits", "1234567890123456", "1234 5678 9012 3456"},
		{"already grouped", "1234 5678 9012 3456", "1234 5678 9012 3456"},
		{"interior edit", "1234 5678 9X012 3456", "1234 5678 9X01 2345 6"},
		{"uneven spacing", "12 345 6789", "1234 5678 9"},
		{"short", "123", "123"},
		{"tabs and newlines", "1234\t5678\n90", "1234 5678 90"},
		{"empty", "", ""},
		{"only spaces", "    ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardNumber(tt.input))
		})
	}
}

func TestCardNumberIsIdempotent(t *testing.T) {
	once := CardNumber("4111111111111111")
	assert.Equal(t, once, CardNumber(once))
}

func TestExpiry(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1225", "12/25"},
		{"12/25", "12/25"},
		{"1", "1"},
		{"12", "12/"},
		{"123", "12/3"},
		{"122", "12/2"},
		{"12255", "12/25"},
		{"ab12cd25", "12/25"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Expiry(tt.input))
		})
	}
}

func TestExpiryNeverAcceptsThirdDigitBeforeSlash(t *testing.T) {
	for _, in := range []string{"123", "1234", "99999", "0 1 2"} {
		out := Expiry(in)
		assert.Equal(t, byte('/'), out[2], "input %q gave %q", in, out)
	}
}

func TestCVV(t *testing.T) {
	assert.Equal(t, "123", CVV("123"))
	assert.Equal(t, "12", CVV("1a2"))
	assert.Equal(t, "", CVV("abc"))
	assert.Equal(t, "987", CVV(" 9-8.7 "))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "************3456", MaskCardNumber("1234 5678 9012 3456"))
	assert.Equal(t, "**", MaskCardNumber("12"))
}
