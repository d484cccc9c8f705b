package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateGlyph checks that value is a single printable character.
func ValidateGlyph(field string, value string) []string {
	if value == "" {
		return []string{field + " cannot be empty"}
	}
	if strings.ContainsAny(value, "\r\n\t") {
		return []string{field + " must not contain whitespace control characters"}
	}

	r, size := utf8.DecodeRuneInString(value)
	if size != len(value) {
		return []string{field + " must be a single character"}
	}
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return []string{field + " must be printable"}
	}
	return nil
}
