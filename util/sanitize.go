package util

import (
	"strings"
	"unicode"
)

// SanitizeString trims whitespace and removes control characters from s.
// Translated messages pass through here before reaching a client response so
// raw causes cannot smuggle newlines or terminal escapes into the body.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
