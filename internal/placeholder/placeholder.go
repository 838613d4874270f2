// Package placeholder rewrites positional template tokens between the flat
// JSON table syntax ({0}, {1}, ...) and the string catalog syntax (%1$@, %@).
package placeholder

import (
	"regexp"
	"strings"
)

var (
	positionalRegex = regexp.MustCompile(`\{(\d+)\}`)
	indexedRegex    = regexp.MustCompile(`%(\d+)\$@`)
)

// Generic is the unindexed catalog placeholder.
const Generic = "%@"

// Positional rewrites every zero-based {n} token to its one-based %<n+1>$@ form.
// Text without tokens is returned unchanged.
func Positional(text string) string {
	if !strings.Contains(text, "{") {
		return text
	}
	return positionalRegex.ReplaceAllStringFunc(text, func(token string) string {
		digits := token[1 : len(token)-1]
		return "%" + Increment(digits) + "$@"
	})
}

// Unindexed rewrites every {n} token to the generic %@ token, dropping the index.
func Unindexed(text string) string {
	if !strings.Contains(text, "{") {
		return text
	}
	return positionalRegex.ReplaceAllLiteralString(text, Generic)
}

// StripIndex collapses every %<n>$@ token to %@.
func StripIndex(text string) string {
	if !strings.Contains(text, "$@") {
		return text
	}
	return indexedRegex.ReplaceAllLiteralString(text, Generic)
}

// Increment adds one to a non-negative decimal number given as ASCII digits.
// Leading zeros are dropped; there is no upper bound on the length.
func Increment(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "1"
	}
	out := []byte(digits)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] != '9' {
			out[i]++
			return string(out)
		}
		out[i] = '0'
	}
	return "1" + string(out)
}
