// File: apperr_test.go
// Title: Structured Error Tests
// Description: Tests for coded error construction, wrapping, and code
//              extraction through error chains.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "file not found")

	if err.Code() != CodeNotFound {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeNotFound)
	}
	if err.Message() != "file not found" {
		t.Errorf("Message() = %q, want %q", err.Message(), "file not found")
	}
	if got := err.Error(); got != "NOT_FOUND: file not found" {
		t.Errorf("Error() = %q, want %q", got, "NOT_FOUND: file not found")
	}
}

func TestNewInvalidCode(t *testing.T) {
	err := New(Code("MADE_UP"), "message")
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v for unrecognized code", err.Code(), CodeUnknown)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeNotFound, "locale file not found: %s", "glb_glb.json")
	if err.Message() != "locale file not found: glb_glb.json" {
		t.Errorf("Message() = %q", err.Message())
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := Wrap(cause, CodeMalformedJSON, "parse glb_glb.json")

	if err.Code() != CodeMalformedJSON {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeMalformedJSON)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	want := "MALFORMED_JSON: parse glb_glb.json: unexpected end of JSON input"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, CodeIO, "whatever"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"nil", nil, CodeUnknown},
		{"plain error", errors.New("plain"), CodeUnknown},
		{"coded error", New(CodeEmptyReference, "no keys"), CodeEmptyReference},
		{"wrapped in fmt", fmt.Errorf("context: %w", New(CodeNotFound, "x")), CodeNotFound},
		{"coded wrapping coded", Wrap(New(CodeIO, "inner"), CodeMalformedJSON, "outer"), CodeMalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.expected {
				t.Errorf("CodeOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := Wrap(New(CodeIO, "inner"), CodeMalformedJSON, "outer")

	if !HasCode(err, CodeMalformedJSON) {
		t.Error("HasCode(outer code) = false, want true")
	}
	if !HasCode(err, CodeIO) {
		t.Error("HasCode(inner code) = false, want true")
	}
	if HasCode(err, CodeEmptyReference) {
		t.Error("HasCode(absent code) = true, want false")
	}
	if HasCode(nil, CodeIO) {
		t.Error("HasCode(nil) = true, want false")
	}
}

func TestCodeIsValid(t *testing.T) {
	for _, code := range []Code{CodeUnknown, CodeIO, CodeNotFound, CodeMalformedJSON, CodeEmptyReference, CodeInvalidConfig} {
		if !code.IsValid() {
			t.Errorf("IsValid(%v) = false, want true", code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("IsValid(NOPE) = true, want false")
	}
}
