package utils

import (
	"strings"
	"unicode"
)

// SanitizeString trims whitespace and strips non-printable runes. Text is
// stored as submitted; HTML escaping happens at render time in the JSON
// encoder.
func SanitizeString(input string) string {
	trimmed := strings.TrimSpace(input)

	var result strings.Builder
	for _, r := range trimmed {
		if unicode.IsPrint(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// SanitizeText sanitizes multi-line text input, keeping newlines and tabs.
func SanitizeText(input string) string {
	trimmed := strings.TrimSpace(input)

	var result strings.Builder
	for _, r := range trimmed {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
