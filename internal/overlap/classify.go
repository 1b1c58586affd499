// File: classify.go
// Title: Per-Key Classification
// Description: Implements threshold-based classification of filled
//              translation entries into the heuristic buckets, built on the
//              overlap ratio.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation

package overlap

import "fmt"

// Classification is the per-key outcome of the heuristic
type Classification int

// Classification buckets. Buckets are mutually exclusive; every filled key
// lands in exactly one of them, and unfilled keys are Missing.
const (
	ClassMissing Classification = iota
	ClassIdenticalToBase
	ClassIdenticalAllowed
	ClassMostlyBase
	ClassPartiallyTranslated
	ClassFullyTranslated
)

// String returns the human-readable bucket name
func (c Classification) String() string {
	switch c {
	case ClassMissing:
		return "missing"
	case ClassIdenticalToBase:
		return "identical-to-base"
	case ClassIdenticalAllowed:
		return "identical-but-allowed"
	case ClassMostlyBase:
		return "mostly-base-language"
	case ClassPartiallyTranslated:
		return "partially-translated"
	case ClassFullyTranslated:
		return "fully-translated"
	default:
		return "unknown"
	}
}

// MarshalText makes classifications render as bucket names in JSON reports
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Thresholds holds the two cut-off points of the heuristic
type Thresholds struct {
	// MostlyBase is the ratio at or above which a candidate counts as
	// still mostly base-language
	MostlyBase float64

	// FullyTranslated is the ratio at or below which a candidate counts
	// as fully translated
	FullyTranslated float64
}

// DefaultThresholds returns the standard cut-offs
func DefaultThresholds() Thresholds {
	return Thresholds{
		MostlyBase:      0.85,
		FullyTranslated: 0.05,
	}
}

// Validate checks that both thresholds are ratios and do not overlap
func (t Thresholds) Validate() error {
	if t.MostlyBase < 0 || t.MostlyBase > 1 {
		return fmt.Errorf("mostly-base threshold %v outside [0,1]", t.MostlyBase)
	}
	if t.FullyTranslated < 0 || t.FullyTranslated > 1 {
		return fmt.Errorf("fully-translated threshold %v outside [0,1]", t.FullyTranslated)
	}
	if t.FullyTranslated >= t.MostlyBase {
		return fmt.Errorf("fully-translated threshold %v must be below mostly-base threshold %v",
			t.FullyTranslated, t.MostlyBase)
	}
	return nil
}

// Classify buckets a filled candidate string against its base-language
// string. The caller is responsible for excluding unfilled entries.
//
// An exact match with the base normally means the entry was never
// translated. The exception is a base string whose filtered token set is
// empty (all placeholders or allow-listed words): equality then carries no
// evidence of non-translation and the entry is classified
// identical-but-allowed instead.
func Classify(base, candidate string, allow Allowlist, th Thresholds) (Classification, float64) {
	ratio := Ratio(base, candidate, allow)

	if candidate == base {
		if len(allow.Filter(Tokens(base))) == 0 {
			return ClassIdenticalAllowed, ratio
		}
		return ClassIdenticalToBase, ratio
	}

	switch {
	case ratio >= th.MostlyBase:
		return ClassMostlyBase, ratio
	case ratio <= th.FullyTranslated:
		return ClassFullyTranslated, ratio
	default:
		return ClassPartiallyTranslated, ratio
	}
}
