// Package errors provides error handling for textvault.
//
// It re-exports github.com/cockroachdb/errors and defines the sentinels that
// classify every failure the core can return. Classified errors are built by
// wrapping a sentinel or marking an underlying cause, so errors.Is keeps
// working through any number of wraps:
//
//	return errors.Wrapf(errors.ErrConflict, "record %s", id)
//	return errors.Mark(errors.Wrap(err, "insert"), errors.ErrStoreFailure)
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New      = crdb.New
	Newf     = crdb.Newf
	Wrap     = crdb.Wrap
	Wrapf    = crdb.Wrapf
	Mark     = crdb.Mark
	WithHint = crdb.WithHint
)

// Error inspection
var (
	Is           = crdb.Is
	IsAny        = crdb.IsAny
	As           = crdb.As
	UnwrapAll    = crdb.UnwrapAll
	FlattenHints = crdb.FlattenHints
)

var (
	// ErrInvalidInput indicates a create request without a usable value.
	ErrInvalidInput = New("invalid input")

	// ErrConflict indicates a record with the same content already exists.
	ErrConflict = New("record already exists")

	// ErrNotFound indicates no record has the requested id.
	ErrNotFound = New("record not found")

	// ErrUnparseableQuery indicates a filter that could not be interpreted:
	// an unrecognised natural-language query or an invalid structured parameter.
	ErrUnparseableQuery = New("unparseable query")

	// ErrStoreFailure indicates the persistence layer could not complete an operation.
	ErrStoreFailure = New("store failure")
)

// IsInvalidInput reports whether err is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return err != nil && Is(err, ErrInvalidInput)
}

// IsConflict reports whether err is or wraps ErrConflict.
func IsConflict(err error) bool {
	return err != nil && Is(err, ErrConflict)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsUnparseableQuery reports whether err is or wraps ErrUnparseableQuery.
func IsUnparseableQuery(err error) bool {
	return err != nil && Is(err, ErrUnparseableQuery)
}

// IsStoreFailure reports whether err is or wraps ErrStoreFailure.
func IsStoreFailure(err error) bool {
	return err != nil && Is(err, ErrStoreFailure)
}

// StoreFailure marks err as a persistence failure, keeping its message and cause.
func StoreFailure(err error, op string) error {
	if err == nil {
		return nil
	}
	return Mark(Wrap(err, op), ErrStoreFailure)
}
