// File: apperr.go
// Title: Structured Error Implementation
// Description: Implements the Error type used across the toolkit. Errors
//              carry a classification code and an optional cause while
//              remaining compatible with Go's errors.Is/As machinery.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with coded errors

package apperr

import (
	"errors"
	"fmt"
)

// Error represents a structured error with a classification code
type Error struct {
	code    Code
	message string
	cause   error
}

// New creates a new Error with the given code and message
func New(code Code, message string) *Error {
	if !code.IsValid() {
		code = CodeUnknown
	}
	return &Error{
		code:    code,
		message: message,
	}
}

// Newf creates a new Error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a code and additional context.
// Returns nil when err is nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.cause = err
	return e
}

// Wrapf wraps an existing error with a code and a formatted message
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// Code returns the classification code of the error
func (e *Error) Code() Code {
	return e.code
}

// Message returns the error message without the code prefix or cause
func (e *Error) Message() string {
	return e.message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf extracts the classification code from an error chain.
// Returns CodeUnknown for nil errors and errors without a code.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// HasCode reports whether any error in the chain carries the given code
func HasCode(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.code == code {
			return true
		}
		err = e.cause
	}
	return false
}
