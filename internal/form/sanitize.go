package form

import (
	"strings"
	"unicode"
)

// TitleCaseWords uppercases the first rune of every word and lowercases the
// rest. Words are separated by whitespace and hyphens, which are kept as is.
func TitleCaseWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := true
	for _, c := range s {
		if c == '-' || unicode.IsSpace(c) {
			start = true
			b.WriteRune(c)
			continue
		}
		if start {
			b.WriteRune(unicode.ToUpper(c))
			start = false
		} else {
			b.WriteRune(unicode.ToLower(c))
		}
	}
	return b.String()
}

// SlugifyUsername trims and lowercases s, then drops every rune that is not
// an ASCII letter, digit or underscore.
func SlugifyUsername(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(c rune) rune {
		if isWordRune(c) {
			return c
		}
		return -1
	}, s)
}

func isWordRune(c rune) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// Name is the sanitizer for first names and surnames.
func Name(s string) string {
	return TitleCaseWords(strings.TrimSpace(s))
}

// Trim is the sanitizer for every other text field.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
