// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for classifying failures of
//              the language pack tools. The codes drive exit messages and
//              allow tests to assert on failure kinds without string matching.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core error codes

package apperr

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the language pack toolkit
const (
	// Generic codes
	CodeUnknown Code = "UNKNOWN"
	CodeIO      Code = "IO_ERROR"

	// Input files
	CodeNotFound       Code = "NOT_FOUND"
	CodeMalformedJSON  Code = "MALFORMED_JSON"
	CodeEmptyReference Code = "EMPTY_REFERENCE"

	// Configuration
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeIO,
		CodeNotFound, CodeMalformedJSON, CodeEmptyReference,
		CodeInvalidConfig:
		return true
	default:
		return false
	}
}
