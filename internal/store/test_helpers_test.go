package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/textvault/internal/ir"
	"github.com/roach88/textvault/internal/props"
	"github.com/roach88/textvault/internal/queryir"
)

// createTestStore creates a new SQLite store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRecord builds the record the engine would store for value.
func createTestRecord(value, createdAt string) ir.StringRecord {
	return ir.StringRecord{
		ID:         ir.ID(value),
		Value:      value,
		Properties: props.Compute(value),
		CreatedAt:  createdAt,
	}
}

// recordStore is the contract both adapters satisfy.
type recordStore interface {
	InsertIfAbsent(ctx context.Context, rec ir.StringRecord) (bool, error)
	Get(ctx context.Context, id string) (ir.StringRecord, bool, error)
	Scan(ctx context.Context, f queryir.Filter) ([]ir.StringRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var (
	_ recordStore = (*Store)(nil)
	_ recordStore = (*Memory)(nil)
)

// insertAll inserts every value in order, failing the test on any error or conflict.
func insertAll(t *testing.T, s recordStore, values []string) {
	t.Helper()
	ctx := context.Background()
	for _, v := range values {
		inserted, err := s.InsertIfAbsent(ctx, createTestRecord(v, "2025-01-01T00:00:00.000000Z"))
		if err != nil {
			t.Fatalf("InsertIfAbsent(%q) failed: %v", v, err)
		}
		if !inserted {
			t.Fatalf("InsertIfAbsent(%q) reported conflict", v)
		}
	}
}
