package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/textvault/internal/testutil"
)

func TestMemory_InsertGetDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	rec := createTestRecord("level", "2025-01-01T00:00:00.000000Z")

	inserted, err := m.InsertIfAbsent(ctx, rec)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, 1, m.Len())

	got, found, err := m.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec, got)

	deleted, err := m.Delete(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, found, err = m.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err = m.Delete(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemory_ConflictLeavesOriginal(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.InsertIfAbsent(ctx, createTestRecord("same", "2025-01-01T00:00:00.000000Z"))
	require.NoError(t, err)

	inserted, err := m.InsertIfAbsent(ctx, createTestRecord("same", "2030-01-01T00:00:00.000000Z"))
	require.NoError(t, err)
	assert.False(t, inserted)

	got, _, err := m.Get(ctx, createTestRecord("same", "").ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T00:00:00.000000Z", got.CreatedAt)
}

func TestMemory_ReturnedRecordsAreCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	rec := createTestRecord("abc", "2025-01-01T00:00:00.000000Z")
	_, err := m.InsertIfAbsent(ctx, rec)
	require.NoError(t, err)

	got, _, err := m.Get(ctx, rec.ID)
	require.NoError(t, err)
	got.Properties.CharacterFrequencyMap["a"] = 99

	again, _, err := m.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Properties.CharacterFrequencyMap["a"])
}

func TestMemory_ScanFixtures(t *testing.T) {
	fixtures := testutil.MustLoadFixtures(t)
	m := NewMemory()
	insertAll(t, m, fixtures.Values)

	for _, fc := range fixtures.Filters {
		t.Run(fc.Name, func(t *testing.T) {
			records, err := m.Scan(context.Background(), buildFilter(t, fc.Params))
			require.NoError(t, err)
			assert.Equal(t, fc.Expect, testutil.Values(records))
		})
	}
}

func TestMemory_ConcurrentSameContent(t *testing.T) {
	m := NewMemory()
	rec := createTestRecord("contended", "2025-01-01T00:00:00.000000Z")

	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			inserted, err := m.InsertIfAbsent(context.Background(), rec)
			assert.NoError(t, err)
			if inserted {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, m.Len())
}
