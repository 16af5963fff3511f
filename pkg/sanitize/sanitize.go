// Package sanitize cleans merchant-supplied copy before it is stored and
// rendered on the public checkout page.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegex    = regexp.MustCompile(`</?[^>]+(>|$)`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Text strips HTML tags and NUL bytes, collapses whitespace runs to a single
// space, trims, and truncates to maxLength runes.
func Text(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	s = htmlTagRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\x00", "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return LimitLength(s, maxLength)
}

// NullableText is Text for optional fields: nil and values that sanitise to
// the empty string both yield nil.
func NullableText(s *string, maxLength int) *string {
	if s == nil {
		return nil
	}
	out := Text(*s, maxLength)
	if out == "" {
		return nil
	}
	return &out
}

// URL trims a URL; empty values yield nil.
func URL(s *string) *string {
	if s == nil {
		return nil
	}
	out := strings.TrimSpace(*s)
	if out == "" {
		return nil
	}
	return &out
}

// LimitLength truncates s to at most maxLength runes.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}
