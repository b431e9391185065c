// Package textutils provides text normalization utilities shared by the
// message parsers.
package textutils

import (
	"strings"
)

// Normalize collapses all whitespace runs (including newlines and tabs) in
// the raw message text to single spaces and trims the ends. SMS bodies may
// contain embedded line breaks that would otherwise defeat single-line
// pattern matching.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.Grow(len(text))
	builder.WriteString(words[0])
	for i := 1; i < len(words); i++ {
		builder.WriteByte(' ')
		builder.WriteString(words[i])
	}
	return builder.String()
}

// ContainsAny reports whether the lower-cased text contains any of the given
// lower-case keywords.
func ContainsAny(text string, keywords ...string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether the lower-cased text contains every one of the
// given lower-case keywords.
func ContainsAll(text string, keywords ...string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if !strings.Contains(lower, keyword) {
			return false
		}
	}
	return true
}
