package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases, strips diacritics, and collapses whitespace so that
// "Dani Rojas" matches "dani rojás".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = stripDiacritics(s)
	s = strings.ToLower(strings.TrimSpace(s))
	return collapseWhitespace(s)
}

// Contains reports whether haystack contains needle after normalization.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

func stripDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if !unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing (combining accents)
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
