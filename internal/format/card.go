// Package format holds the input masks of the payment form. The inline
// script of the payment view applies the same rules on every keystroke; the
// server applies them again to whatever it receives.
package format

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s`)
	nonDigit   = regexp.MustCompile(`\D`)
)

// CardNumber removes whitespace and regroups what is left in chunks of four
// separated by single spaces.
func CardNumber(value string) string {
	runes := []rune(whitespace.ReplaceAllString(value, ""))
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Expiry keeps digits only and, once two are present, renders them as MM/YY.
// Digits past the fourth are dropped.
func Expiry(value string) string {
	digits := nonDigit.ReplaceAllString(value, "")
	if len(digits) < 2 {
		return digits
	}
	end := min(len(digits), 4)
	return digits[:2] + "/" + digits[2:end]
}

func CVV(value string) string {
	return nonDigit.ReplaceAllString(value, "")
}

// MaskCardNumber keeps the last four digits for logs.
func MaskCardNumber(value string) string {
	digits := nonDigit.ReplaceAllString(value, "")
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
