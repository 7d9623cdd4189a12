package engine

import "github.com/roach88/textvault/internal/errors"

// ErrorCode is the stable, transport-neutral name of an error class.
type ErrorCode string

const (
	// CodeInvalidInput indicates a create request without a usable value.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeConflict indicates the content is already stored.
	CodeConflict ErrorCode = "CONFLICT"

	// CodeNotFound indicates no record has the requested id.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeUnparseableQuery indicates an unrecognised or invalid filter.
	CodeUnparseableQuery ErrorCode = "UNPARSEABLE_QUERY"

	// CodeStoreFailure indicates the store could not complete the operation.
	CodeStoreFailure ErrorCode = "STORE_FAILURE"

	// CodeInternal covers anything unclassified.
	CodeInternal ErrorCode = "INTERNAL"
)

// Code classifies err. Returns "" for a nil error.
//
// Classification is by errors.Is, so it survives any amount of wrapping.
// When several sentinels are present the first match below wins.
func Code(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case errors.IsInvalidInput(err):
		return CodeInvalidInput
	case errors.IsConflict(err):
		return CodeConflict
	case errors.IsNotFound(err):
		return CodeNotFound
	case errors.IsUnparseableQuery(err):
		return CodeUnparseableQuery
	case errors.IsStoreFailure(err):
		return CodeStoreFailure
	default:
		return CodeInternal
	}
}
