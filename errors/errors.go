// Package errors provides error handling for quanta.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := loadRules(); err != nil {
//	    return errors.Wrap(err, "failed to load rule set")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidRule) {
//	    // handle malformed rule configuration
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

// Sentinel errors for rule-set configuration problems. These are load-time
// failures: a rule set that trips any of them must never be handed to the
// engine. Parsing ordinary text never produces an error; absence of matches
// is an empty result, not a failure.
var (
	// ErrEmptyPattern indicates a rule whose pattern has no items
	ErrEmptyPattern = New("rule pattern is empty")

	// ErrInvalidRule indicates a rule that failed load-time validation
	// (uncompilable regex, missing capture group, bad range bounds)
	ErrInvalidRule = New("invalid rule")

	// ErrUnknownLocale indicates a parse request for a locale with no
	// registered rule tables
	ErrUnknownLocale = New("unknown locale")

	// ErrUnknownDimension indicates a requested dimension with no
	// registered rules or converter
	ErrUnknownDimension = New("unknown dimension")
)

// IsConfigError reports whether err stems from malformed rule-set
// configuration, as opposed to a malformed request.
func IsConfigError(err error) bool {
	return err != nil && IsAny(err, ErrEmptyPattern, ErrInvalidRule)
}

// NewInvalidRuleError creates an invalid-rule error naming the offending rule.
func NewInvalidRuleError(ruleName string, format string, args ...interface{}) error {
	return Wrap(ErrInvalidRule, ruleName+": "+Newf(format, args...).Error())
}
