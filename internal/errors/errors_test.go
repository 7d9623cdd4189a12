package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := Wrapf(ErrConflict, "record %s", "abc")
	err = Wrap(err, "create")
	err = fmt.Errorf("handler: %w", err)

	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "record abc")
}

func TestStoreFailureMarksCause(t *testing.T) {
	cause := stderrors.New("disk I/O error")
	err := StoreFailure(cause, "insert record")

	assert.True(t, IsStoreFailure(err))
	assert.True(t, Is(err, cause), "original cause stays reachable")
	assert.Contains(t, err.Error(), "insert record")
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestStoreFailureNil(t *testing.T) {
	assert.NoError(t, StoreFailure(nil, "noop"))
}

func TestPredicatesRejectNil(t *testing.T) {
	assert.False(t, IsInvalidInput(nil))
	assert.False(t, IsConflict(nil))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsUnparseableQuery(nil))
	assert.False(t, IsStoreFailure(nil))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidInput, ErrConflict, ErrNotFound, ErrUnparseableQuery, ErrStoreFailure}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "%v must not match %v", a, b)
		}
	}
}
