package store

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/roach88/textvault/internal/ir"
	"github.com/roach88/textvault/internal/queryir"
)

// Memory is an in-process record store.
// Scans evaluate predicates with queryir.Matches, the same semantics the
// SQLite store compiles to SQL.
type Memory struct {
	mu      sync.RWMutex
	records map[string]memoryEntry
	nextSeq int64
}

type memoryEntry struct {
	rec ir.StringRecord
	seq int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]memoryEntry)}
}

// InsertIfAbsent stores rec unless a record with the same id exists.
func (m *Memory) InsertIfAbsent(_ context.Context, rec ir.StringRecord) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[rec.ID]; ok {
		return false, nil
	}
	m.nextSeq++
	m.records[rec.ID] = memoryEntry{rec: cloneRecord(rec), seq: m.nextSeq}
	return true, nil
}

// Get retrieves a single record by id.
func (m *Memory) Get(_ context.Context, id string) (ir.StringRecord, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.records[id]
	if !ok {
		return ir.StringRecord{}, false, nil
	}
	return cloneRecord(e.rec), true, nil
}

// Scan returns every record satisfying f, in insertion order.
func (m *Memory) Scan(_ context.Context, f queryir.Filter) ([]ir.StringRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]memoryEntry, 0, len(m.records))
	for _, e := range m.records {
		if queryir.MatchesFilter(f, e.rec) {
			matched = append(matched, e)
		}
	}
	slices.SortFunc(matched, func(a, b memoryEntry) int {
		if c := cmp.Compare(a.seq, b.seq); c != 0 {
			return c
		}
		return strings.Compare(a.rec.ID, b.rec.ID)
	})

	records := make([]ir.StringRecord, len(matched))
	for i, e := range matched {
		records[i] = cloneRecord(e.rec)
	}
	return records, nil
}

// Delete removes the record with the given id.
func (m *Memory) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// cloneRecord copies the frequency map so callers cannot mutate stored state.
func cloneRecord(rec ir.StringRecord) ir.StringRecord {
	rec.Properties.CharacterFrequencyMap = maps.Clone(rec.Properties.CharacterFrequencyMap)
	return rec
}
