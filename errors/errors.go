// Package errors provides error handling for cgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// On top of the re-exports it defines the generation-time error taxonomy.
// Every generation error is fatal to the current expansion: emitters report
// it before producing any output, so a failed expansion never leaves a
// partial fragment behind.
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check generation errors
//	if errors.Is(err, errors.ErrTypeMismatch) {
//	    // caller passed a bad count or a non-sequence
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Generation-time sentinel errors. Emitters wrap these so callers can
// classify failures with errors.Is while still seeing the operation name,
// the expected shape, and what was actually given.
var (
	// ErrArity indicates an operation was invoked with the wrong number or
	// kind of arguments, e.g. a dispatcher handler set missing a variant.
	ErrArity = New("arity mismatch")

	// ErrTypeMismatch indicates an argument was not the expected sequence or
	// count shape, e.g. a negative count or a nil sequence.
	ErrTypeMismatch = New("type mismatch")

	// ErrMalformedSequence indicates a term claimed to be head-plus-rest but
	// lacked a well-formed rest.
	ErrMalformedSequence = New("malformed sequence")
)

// NewArityError reports a wrong-arity invocation of op. expected describes
// the required handler set or argument shape, given describes what arrived.
func NewArityError(op, expected, given string) error {
	return Wrapf(ErrArity, "%s: expected %s, given %s", op, expected, given)
}

// NewTypeMismatchError reports an argument of the wrong shape to op.
func NewTypeMismatchError(op, expected string, given interface{}) error {
	return Wrapf(ErrTypeMismatch, "%s: expected %s, given %v", op, expected, given)
}

// NewMalformedSequenceError reports a head-plus-rest term with a missing rest.
func NewMalformedSequenceError(op string) error {
	return Wrapf(ErrMalformedSequence, "%s: cons term lacks a well-formed rest", op)
}

// IsArityError checks if an error is or wraps ErrArity.
func IsArityError(err error) bool {
	return err != nil && Is(err, ErrArity)
}

// IsTypeMismatchError checks if an error is or wraps ErrTypeMismatch.
func IsTypeMismatchError(err error) bool {
	return err != nil && Is(err, ErrTypeMismatch)
}

// IsMalformedSequenceError checks if an error is or wraps ErrMalformedSequence.
func IsMalformedSequenceError(err error) bool {
	return err != nil && Is(err, ErrMalformedSequence)
}
