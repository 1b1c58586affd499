// File: merge_test.go
// Title: Locale File Merger Tests
// Description: Tests for the merge invariants: reference key order,
//              completeness, fallback modes, obsolete key reporting, and
//              idempotence.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-27
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation

package merge

import (
	"bytes"
	"strings"
	"testing"

	"github.com/janAlonola/globasa-minecraft/internal/langfile"
)

func mustParse(t *testing.T, input string) *langfile.File {
	t.Helper()
	f, err := langfile.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	return f
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"reference", FallbackReference, false},
		{"empty", FallbackEmpty, false},
		{"  Reference ", FallbackReference, false},
		{"EMPTY", FallbackEmpty, false},
		{"both", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.expected {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMergeOrderInvariant(t *testing.T) {
	ref := mustParse(t, `{"z": "Z", "a": "A", "m": "M"}`)
	loc := mustParse(t, `{"a": "translated a", "z": "translated z"}`)

	result := Merge(ref, loc, FallbackReference)

	refKeys := ref.Keys()
	gotKeys := result.Merged.Keys()
	if len(gotKeys) != len(refKeys) {
		t.Fatalf("merged has %d keys, want %d", len(gotKeys), len(refKeys))
	}
	for i := range refKeys {
		if gotKeys[i] != refKeys[i] {
			t.Fatalf("merged key order %v, want reference order %v", gotKeys, refKeys)
		}
	}
}

func TestMergeCompleteness(t *testing.T) {
	ref := mustParse(t, `{"a": "Apple", "b": "Banana", "c": "Cherry", "d": "Date"}`)
	loc := mustParse(t, `{"a": "Pomo", "b": "", "c": "   ", "x": "obsolete"}`)

	tests := []struct {
		name     string
		mode     Mode
		expected map[string]string
	}{
		{
			name: "reference fallback",
			mode: FallbackReference,
			expected: map[string]string{
				"a": "Pomo",   // kept
				"b": "Banana", // empty -> fallback
				"c": "Cherry", // blank -> fallback
				"d": "Date",   // absent -> fallback
			},
		},
		{
			name: "empty fallback",
			mode: FallbackEmpty,
			expected: map[string]string{
				"a": "Pomo",
				"b": "",
				"c": "",
				"d": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Merge(ref, loc, tt.mode)

			for key, want := range tt.expected {
				got, ok := result.Merged.Get(key)
				if !ok {
					t.Errorf("merged missing key %q", key)
					continue
				}
				if got != want {
					t.Errorf("merged[%q] = %q, want %q", key, got, want)
				}
			}
			if result.Kept != 1 {
				t.Errorf("Kept = %d, want 1", result.Kept)
			}
			if result.Filled != 3 {
				t.Errorf("Filled = %d, want 3", result.Filled)
			}
		})
	}
}

func TestMergeObsoleteKeys(t *testing.T) {
	ref := mustParse(t, `{"a": "A"}`)
	loc := mustParse(t, `{"a": "kept", "zz": "old", "bb": "older", "mm": 3}`)

	result := Merge(ref, loc, FallbackReference)

	want := []string{"bb", "mm", "zz"} // sorted
	if len(result.Obsolete) != len(want) {
		t.Fatalf("Obsolete = %v, want %v", result.Obsolete, want)
	}
	for i := range want {
		if result.Obsolete[i] != want[i] {
			t.Fatalf("Obsolete = %v, want %v", result.Obsolete, want)
		}
	}
	for _, key := range want {
		if result.Merged.Has(key) {
			t.Errorf("obsolete key %q copied into merged output", key)
		}
	}
}

func TestMergeNonStringNotKept(t *testing.T) {
	ref := mustParse(t, `{"a": "Apple"}`)
	loc := mustParse(t, `{"a": 42}`)

	result := Merge(ref, loc, FallbackReference)

	if v, _ := result.Merged.Get("a"); v != "Apple" {
		t.Errorf("merged[\"a\"] = %q, want fallback %q for non-string value", v, "Apple")
	}
	if result.Filled != 1 {
		t.Errorf("Filled = %d, want 1", result.Filled)
	}
}

func TestMergeNonStringReferenceValue(t *testing.T) {
	// Schema-style reference files may carry non-string values; the
	// reference fallback must copy them verbatim, not coerce to "".
	ref := mustParse(t, `{"a": {"note": "schema"}, "b": "Banana"}`)
	loc := mustParse(t, `{}`)

	result := Merge(ref, loc, FallbackReference)

	var buf bytes.Buffer
	if err := result.Merged.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"a": {"note":"schema"}`) {
		t.Errorf("non-string reference value not copied verbatim:\n%s", buf.String())
	}
	if result.Merged.Filled("a") {
		t.Error("Filled(\"a\") = true, want false for non-string value")
	}

	empty := Merge(ref, loc, FallbackEmpty)
	if v, ok := empty.Merged.Get("a"); !ok || v != "" {
		t.Errorf("empty fallback merged[\"a\"] = %q (ok=%v), want empty string", v, ok)
	}
}

func TestMergeIdempotence(t *testing.T) {
	ref := mustParse(t, `{"a": "Apple", "b": "Banana", "c": "Cherry"}`)
	loc := mustParse(t, `{"b": "Patato", "stale": "gone"}`)

	for _, mode := range []Mode{FallbackReference, FallbackEmpty} {
		t.Run(mode.String(), func(t *testing.T) {
			first := Merge(ref, loc, mode)
			second := Merge(ref, first.Merged, mode)

			var b1, b2 bytes.Buffer
			if err := first.Merged.Encode(&b1); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if err := second.Merged.Encode(&b2); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(b1.Bytes(), b2.Bytes()) {
				t.Errorf("second merge changed output:\nfirst:  %s\nsecond: %s", b1.String(), b2.String())
			}
			if len(second.Obsolete) != 0 {
				t.Errorf("second merge reports obsolete keys %v, want none", second.Obsolete)
			}
		})
	}
}
