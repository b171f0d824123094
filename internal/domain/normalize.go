package domain

import (
	"strings"
	"unicode"
)

// NormalizeName trims a display name and collapses inner whitespace runs
// into a single space. Material and menu item names are stored this way.
func NormalizeName(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
