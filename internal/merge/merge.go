// File: merge.go
// Title: Locale File Merger
// Description: Implements reconciliation of a localized file against the
//              reference key set: reference key order is preserved, existing
//              filled translations are kept, gaps are filled with a
//              configurable fallback, and keys no longer in the reference
//              are dropped and reported as obsolete.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-27
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation

package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/janAlonola/globasa-minecraft/internal/langfile"
	"github.com/janAlonola/globasa-minecraft/internal/utils/mapx"
)

// Mode selects what a missing or empty translation is filled with
type Mode int

const (
	// FallbackReference fills gaps with the reference-language string so
	// the pack always renders something readable in game
	FallbackReference Mode = iota

	// FallbackEmpty fills gaps with an empty string so untranslated
	// entries stay visible to translators
	FallbackEmpty
)

// String returns the configuration name of the mode
func (m Mode) String() string {
	switch m {
	case FallbackReference:
		return "reference"
	case FallbackEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// ParseMode converts a configuration string into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reference":
		return FallbackReference, nil
	case "empty":
		return FallbackEmpty, nil
	default:
		return 0, fmt.Errorf("unknown fallback mode %q (want \"reference\" or \"empty\")", s)
	}
}

// Result summarizes one merge run
type Result struct {
	// Merged is the output file, key order equal to the reference
	Merged *langfile.File

	// Kept counts reference keys whose existing translation was preserved
	Kept int

	// Filled counts reference keys that received the fallback value
	Filled int

	// Obsolete lists keys present in the localized file but absent from
	// the reference, sorted. They are never copied into the output.
	Obsolete []string
}

// Merge reconciles localized against reference. For every reference key the
// output holds either the existing filled translation or the fallback
// selected by mode; nothing else ever appears in the output.
func Merge(reference, localized *langfile.File, mode Mode) Result {
	merged := langfile.New()
	result := Result{}

	for _, key := range reference.Keys() {
		if localized.Filled(key) {
			value, _ := localized.Get(key)
			merged.Set(key, value)
			result.Kept++
			continue
		}

		result.Filled++
		switch mode {
		case FallbackEmpty:
			merged.Set(key, "")
		default:
			// Copy the reference entry verbatim so schema-style
			// reference files with non-string values round-trip.
			merged.SetEntry(key, reference.Entries()[key])
		}
	}

	result.Obsolete = mapx.DifferenceKeys(localized.Entries(), reference.Entries())
	sort.Strings(result.Obsolete)

	result.Merged = merged
	return result
}
