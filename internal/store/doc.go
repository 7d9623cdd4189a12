// Package store provides the record store adapters for textvault.
//
// Two implementations share one contract (insert-if-absent, get, scan,
// delete):
//   - Store: SQLite via database/sql, the durable backend
//   - Memory: a mutex-guarded map, for tests and ephemeral use
//
// # Critical Patterns
//
// Insert-if-absent is a single INSERT ... ON CONFLICT(id) DO NOTHING
// statement. Zero rows affected means the id already existed; the existing
// row is never touched.
//
// All scans MUST include: ORDER BY seq ASC, id COLLATE BINARY ASC.
// seq is assigned at insert time and gives insertion order.
//
// character_frequency_map is persisted as canonical JSON text and decoded by
// ir.UnmarshalFrequencyMap. It is never evaluated.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Every persistence error is marked with errors.ErrStoreFailure.
package store
