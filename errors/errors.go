// Package errors provides error handling for labdoc.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
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
//	// Add hints for users
//	return errors.WithHint(err, "run 'labdoc generate' to regenerate")
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
	Is          = crdb.Is
	As          = crdb.As
	Unwrap      = crdb.Unwrap
	GetAllHints = crdb.GetAllHints
)

// Assertions
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors shared across labdoc.
// Use with errors.Is() for type-safe checking; wrap with errors.Wrap()
// to add context while preserving the type.
var (
	// ErrDuplicateResource indicates a resource type name was registered twice
	ErrDuplicateResource = New("duplicate resource type")

	// ErrUnknownResource indicates a lookup for a type that was never registered
	ErrUnknownResource = New("unknown resource type")

	// ErrOutOfDate indicates the generated documentation no longer matches
	// the registered hierarchy
	ErrOutOfDate = New("documentation out of date")
)

// IsDuplicateResource checks if an error is or wraps ErrDuplicateResource
func IsDuplicateResource(err error) bool {
	return err != nil && Is(err, ErrDuplicateResource)
}

// IsUnknownResource checks if an error is or wraps ErrUnknownResource
func IsUnknownResource(err error) bool {
	return err != nil && Is(err, ErrUnknownResource)
}
