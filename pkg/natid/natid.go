// Package natid formats and structurally checks national ID keys.
// The check is length/digit only; checksum validation is deliberately not
// performed.
package natid

import (
	"fmt"
	"strings"
)

// IsValid reports whether the raw input is exactly eleven digits, ignoring
// the usual punctuation.
func IsValid(raw string) bool {
	digits := Digits(raw)
	return len(digits) == 11
}

// Digits strips separators and keeps only the numeric characters.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders an eleven-digit ID in the display form 000.000.000-00.
// This is applied before every registry lookup or uniqueness check; the
// formatted string is the stored key. Input that is not eleven digits is
// returned unchanged so a failed lookup stays a failed lookup.
func Format(raw string) string {
	digits := Digits(raw)
	if len(digits) != 11 {
		return raw
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}
