// File: stringx.go
// Title: String Utility Functions
// Description: Implements the small set of string helpers the language pack
//              tools need beyond the standard library: blank detection for
//              the "filled" rule and Unicode-safe truncation for report
//              previews.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-22
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to maxLen runes, appending the ellipsis when
// truncation happens. The function is Unicode-aware and never splits a
// multi-byte character. Strings that already fit are returned unchanged.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return truncateRunes(ellipsis, maxLen)
	}
	return truncateRunes(s, maxLen-ellipsisLen) + ellipsis
}

// truncateRunes cuts a string after n runes
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
