package engine

import (
	"context"

	"github.com/roach88/textvault/internal/errors"
	"github.com/roach88/textvault/internal/ir"
	"github.com/roach88/textvault/internal/nlquery"
	"github.com/roach88/textvault/internal/props"
	"github.com/roach88/textvault/internal/queryir"
)

// Store is the record store the engine depends on.
// Implemented by store.Store (SQLite) and store.Memory.
//
// found, inserted and deleted report the outcome; a non-nil error always
// means the operation itself failed.
type Store interface {
	InsertIfAbsent(ctx context.Context, rec ir.StringRecord) (inserted bool, err error)
	Get(ctx context.Context, id string) (rec ir.StringRecord, found bool, err error)
	Scan(ctx context.Context, f queryir.Filter) ([]ir.StringRecord, error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}

// Engine runs the core operations against a Store.
type Engine struct {
	store Store
	clock Clock
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used for created_at.
//
// Default: SystemClock
func WithClock(clock Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// New creates an Engine over store.
// The store's lifecycle stays with the caller.
func New(store Store, opts ...Option) *Engine {
	e := &Engine{store: store, clock: SystemClock{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ListResult is the outcome of a structured filter.
type ListResult struct {
	Records []ir.StringRecord
	Applied map[string]any // Parameter name -> value used
}

// NaturalResult is the outcome of a natural-language filter.
type NaturalResult struct {
	Records  []ir.StringRecord
	Original string         // Query as received
	Parsed   map[string]any // Parameters the query translated to
}

// Create computes the properties of value and stores it.
//
// Errors:
//   - ErrInvalidInput: value is empty (checked before any computation)
//   - ErrConflict: the same content is already stored; the stored record
//     is untouched
//   - ErrStoreFailure: the store could not complete the insert
func (e *Engine) Create(ctx context.Context, value string) (ir.StringRecord, error) {
	if value == "" {
		return ir.StringRecord{}, errors.Wrap(errors.ErrInvalidInput, "value must be a non-empty string")
	}

	rec := ir.StringRecord{
		ID:         ir.ID(value),
		Value:      value,
		Properties: props.Compute(value),
		CreatedAt:  ir.FormatTimestamp(e.clock.Now()),
	}

	inserted, err := e.store.InsertIfAbsent(ctx, rec)
	if err != nil {
		return ir.StringRecord{}, errors.StoreFailure(err, "create")
	}
	if !inserted {
		return ir.StringRecord{}, errors.Wrapf(errors.ErrConflict, "record %s", rec.ID)
	}

	return rec, nil
}

// Get returns the record whose content is value.
// The id is recomputed from value, so callers address records by text.
func (e *Engine) Get(ctx context.Context, value string) (ir.StringRecord, error) {
	return e.GetByID(ctx, ir.ID(value))
}

// GetByID returns the record with the given id.
func (e *Engine) GetByID(ctx context.Context, id string) (ir.StringRecord, error) {
	rec, found, err := e.store.Get(ctx, id)
	if err != nil {
		return ir.StringRecord{}, errors.StoreFailure(err, "get")
	}
	if !found {
		return ir.StringRecord{}, errors.Wrapf(errors.ErrNotFound, "record %s", id)
	}
	return rec, nil
}

// List returns every record matching params, in insertion order.
// Empty params return all records. Invalid params are rejected with
// ErrUnparseableQuery before the store is touched.
func (e *Engine) List(ctx context.Context, params queryir.Params) (ListResult, error) {
	f, err := queryir.Build(params)
	if err != nil {
		return ListResult{}, err
	}

	records, err := e.scan(ctx, f)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{Records: records, Applied: f.Applied}, nil
}

// ListValues parses string parameters (query string, CLI flags) and lists.
func (e *Engine) ListValues(ctx context.Context, values map[string]string) (ListResult, error) {
	params, err := queryir.ParseValues(values)
	if err != nil {
		return ListResult{}, err
	}
	return e.List(ctx, params)
}

// FilterNatural translates query and lists the matching records.
// An unrecognised query is ErrUnparseableQuery; it never degrades to an
// unfiltered scan.
func (e *Engine) FilterNatural(ctx context.Context, query string) (NaturalResult, error) {
	params, err := nlquery.Translate(query)
	if err != nil {
		return NaturalResult{}, err
	}

	res, err := e.List(ctx, params)
	if err != nil {
		return NaturalResult{}, err
	}

	return NaturalResult{
		Records:  res.Records,
		Original: query,
		Parsed:   res.Applied,
	}, nil
}

// Delete removes the record whose content is value.
func (e *Engine) Delete(ctx context.Context, value string) error {
	id := ir.ID(value)
	deleted, err := e.store.Delete(ctx, id)
	if err != nil {
		return errors.StoreFailure(err, "delete")
	}
	if !deleted {
		return errors.Wrapf(errors.ErrNotFound, "record %s", id)
	}
	return nil
}

func (e *Engine) scan(ctx context.Context, f queryir.Filter) ([]ir.StringRecord, error) {
	records, err := e.store.Scan(ctx, f)
	if err != nil {
		return nil, errors.StoreFailure(err, "scan")
	}
	if records == nil {
		records = []ir.StringRecord{}
	}
	return records, nil
}
