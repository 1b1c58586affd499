// File: overlap.go
// Title: Token Overlap Heuristic
// Description: Implements the lexical heuristic that estimates whether a
//              filled translation is still effectively in the base language.
//              Strings are normalized (placeholders and formatting codes
//              stripped, lowercased), tokenized into ASCII word sets, and
//              compared by set overlap against the base-language string.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation of normalize/tokenize/ratio
// - 2026-08-24 v0.1.1: Allow-list aware classification

package overlap

import (
	"regexp"
	"strings"

	"github.com/janAlonola/globasa-minecraft/internal/utils/mapx"
)

// conversionLetters is the fixed set of printf conversion types recognized
// in placeholder tokens. Minecraft lang strings use the Java formatter
// subset (%s, %d, %1$s, ...).
const conversionLetters = "bcdefgnosxBCDEFGNOSX"

var (
	// placeholderPattern matches a doubled percent sign or a percent sign
	// with an optional positional index followed by a conversion letter.
	placeholderPattern = regexp.MustCompile(`%%|%(?:[0-9]+\$)?[` + conversionLetters + `]`)

	// formatCodePattern matches a section-sign formatting code: the sigil
	// plus exactly one following character (color or style selector).
	formatCodePattern = regexp.MustCompile(`(?s)§.`)
)

// Normalize strips placeholder tokens and formatting codes from a string
// and lowercases the remainder
func Normalize(s string) string {
	s = placeholderPattern.ReplaceAllString(s, "")
	s = formatCodePattern.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// Tokens normalizes a string and extracts its token set: all maximal runs
// of ASCII letters and digits, duplicates collapsed
func Tokens(s string) map[string]struct{} {
	normalized := Normalize(s)
	tokens := make(map[string]struct{})

	start := -1
	for i := 0; i <= len(normalized); i++ {
		wordByte := false
		if i < len(normalized) {
			c := normalized[i]
			wordByte = (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
		}
		if wordByte {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens[normalized[start:i]] = struct{}{}
			start = -1
		}
	}
	return tokens
}

// Allowlist is a set of lowercase words that are acceptable even when left
// untranslated (proper nouns, color names, brand words)
type Allowlist map[string]struct{}

// NewAllowlist builds an Allowlist from words, case-insensitively
func NewAllowlist(words []string) Allowlist {
	a := make(Allowlist, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			a[w] = struct{}{}
		}
	}
	return a
}

// Contains reports whether the word is allow-listed (case-insensitive)
func (a Allowlist) Contains(word string) bool {
	_, ok := a[strings.ToLower(word)]
	return ok
}

// Filter returns a new token set with all allow-listed tokens removed
func (a Allowlist) Filter(tokens map[string]struct{}) map[string]struct{} {
	filtered := make(map[string]struct{}, len(tokens))
	for t := range tokens {
		if _, ok := a[t]; !ok {
			filtered[t] = struct{}{}
		}
	}
	return filtered
}

// Ratio computes the overlap between a base-language string and a candidate
// translation: the fraction of the base string's filtered tokens that also
// appear in the candidate. A base string whose content was entirely
// placeholders, formatting codes, or allow-listed words has nothing
// meaningful to compare and yields 0.0.
func Ratio(base, candidate string, allow Allowlist) float64 {
	baseTokens := allow.Filter(Tokens(base))
	if len(baseTokens) == 0 {
		return 0.0
	}

	matched := mapx.IntersectCount(baseTokens, Tokens(candidate))
	return float64(matched) / float64(len(baseTokens))
}
