// File: progress.go
// Title: Translation Progress Analyzer
// Description: Implements completion analysis of a localized file against
//              the reference key set: filled/missing counts, identical-to-
//              base detection, and the overlap-heuristic buckets with a
//              ranked list of suspicious entries.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-20 v0.1.0: Filled/missing analysis
// - 2026-08-24 v0.1.1: Overlap heuristic buckets and flagged examples

package progress

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/janAlonola/globasa-minecraft/internal/langfile"
	"github.com/janAlonola/globasa-minecraft/internal/overlap"
)

// Options controls caps and heuristic parameters of a run
type Options struct {
	// MissingCap bounds the missing-key list in the report
	MissingCap int

	// ExampleCap bounds the flagged-example list in the report
	ExampleCap int

	// Allow is the set of words acceptable even if untranslated
	Allow overlap.Allowlist

	// Thresholds are the heuristic cut-offs
	Thresholds overlap.Thresholds
}

// DefaultOptions returns the standard analyzer settings
func DefaultOptions() Options {
	return Options{
		MissingCap: 200,
		ExampleCap: 40,
		Allow:      overlap.NewAllowlist(nil),
		Thresholds: overlap.DefaultThresholds(),
	}
}

// Example is one flagged entry in the report: a filled translation that
// still overlaps the base language
type Example struct {
	Key       string                 `json:"key"`
	Base      string                 `json:"base"`
	Candidate string                 `json:"candidate"`
	Ratio     float64                `json:"ratio"`
	Class     overlap.Classification `json:"class"`
}

// Report is the structured outcome of one analyzer run. It marshals to
// JSON for machine consumption; the console rendering lives in the report
// package.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	// Basic completion
	TotalKeys      int      `json:"total_keys"`
	Filled         int      `json:"filled"`
	FilledPercent  float64  `json:"filled_percent"`
	MissingOrEmpty int      `json:"missing_or_empty"`
	MissingKeys    []string `json:"missing_keys,omitempty"`
	MissingOmitted int      `json:"missing_omitted,omitempty"`

	// Base-language comparison, present only when a base file was given
	HasBase             bool    `json:"has_base"`
	IdenticalToBase     int     `json:"identical_to_base,omitempty"`
	IdenticalAllowed    int     `json:"identical_but_allowed,omitempty"`
	MostlyBase          int     `json:"mostly_base_language,omitempty"`
	PartiallyTranslated int     `json:"partially_translated,omitempty"`
	FullyTranslated     int     `json:"fully_translated,omitempty"`
	NonIdentical        int     `json:"non_identical,omitempty"`
	NonIdenticalPercent float64 `json:"non_identical_percent,omitempty"`
	CleanPercent        float64 `json:"clean_percent,omitempty"`

	Examples        []Example `json:"examples,omitempty"`
	ExamplesOmitted int       `json:"examples_omitted,omitempty"`
}

// Analyze computes the completion report for candidate against reference.
// base may be nil, which disables the identical-to-base comparison and the
// heuristic buckets. Every key is classified independently; the reference
// key order drives the missing-key listing.
func Analyze(reference, candidate, base *langfile.File, opts Options) *Report {
	report := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		TotalKeys:   reference.Len(),
		HasBase:     base != nil,
	}

	var missing []string
	var flagged []Example

	for _, key := range reference.Keys() {
		if !candidate.Filled(key) {
			report.MissingOrEmpty++
			missing = append(missing, key)
			continue
		}
		report.Filled++

		if base == nil {
			continue
		}

		candValue, _ := candidate.Get(key)
		baseValue, _ := base.Get(key)

		class, ratio := overlap.Classify(baseValue, candValue, opts.Allow, opts.Thresholds)
		switch class {
		case overlap.ClassIdenticalToBase:
			report.IdenticalToBase++
		case overlap.ClassIdenticalAllowed:
			report.IdenticalAllowed++
		case overlap.ClassMostlyBase:
			report.MostlyBase++
		case overlap.ClassPartiallyTranslated:
			report.PartiallyTranslated++
		case overlap.ClassFullyTranslated:
			report.FullyTranslated++
		}

		if class == overlap.ClassMostlyBase || class == overlap.ClassPartiallyTranslated {
			flagged = append(flagged, Example{
				Key:       key,
				Base:      baseValue,
				Candidate: candValue,
				Ratio:     ratio,
				Class:     class,
			})
		}
	}

	if report.TotalKeys > 0 {
		report.FilledPercent = 100.0 * float64(report.Filled) / float64(report.TotalKeys)
	}

	if base != nil {
		report.NonIdentical = report.Filled - report.IdenticalToBase - report.IdenticalAllowed
		if report.TotalKeys > 0 {
			report.NonIdenticalPercent = 100.0 * float64(report.NonIdentical) / float64(report.TotalKeys)
			clean := report.FullyTranslated + report.IdenticalAllowed
			report.CleanPercent = 100.0 * float64(clean) / float64(report.TotalKeys)
		}
	}

	report.MissingKeys, report.MissingOmitted = capList(missing, opts.MissingCap)

	// Worst offenders first; ties resolved by key for determinism
	sort.SliceStable(flagged, func(i, j int) bool {
		if flagged[i].Ratio != flagged[j].Ratio {
			return flagged[i].Ratio > flagged[j].Ratio
		}
		return flagged[i].Key < flagged[j].Key
	})
	if opts.ExampleCap >= 0 && len(flagged) > opts.ExampleCap {
		report.ExamplesOmitted = len(flagged) - opts.ExampleCap
		flagged = flagged[:opts.ExampleCap]
	}
	report.Examples = flagged

	return report
}

func capList(list []string, limit int) ([]string, int) {
	if limit < 0 || len(list) <= limit {
		return list, 0
	}
	return list[:limit], len(list) - limit
}
