// Copyright (c) 2025 A Bit of Help, Inc.

package stringutil

import (
	"regexp"
	"strings"
)

// HasAnyPrefix checks if the string s begins with any of the specified
// prefixes.
func HasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// IsEmpty checks if a string is empty or contains only whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotEmpty is the logical opposite of IsEmpty.
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// RemoveWhitespace removes all whitespace characters from a string.
func RemoveWhitespace(s string) string {
	return whitespaceRE.ReplaceAllString(s, "")
}
