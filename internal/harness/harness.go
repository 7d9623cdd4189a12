package harness

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/roach88/textvault/internal/engine"
	"github.com/roach88/textvault/internal/errors"
	"github.com/roach88/textvault/internal/ir"
	"github.com/roach88/textvault/internal/queryir"
	"github.com/roach88/textvault/internal/store"
	"github.com/roach88/textvault/internal/testutil"
)

// Harness executes one scenario against a fresh store.
type Harness struct {
	engine *engine.Engine
	clock  *testutil.DeterministicClock
	logger *zap.SugaredLogger
}

// Option configures a run.
type Option func(*Harness)

// WithLogger logs every executed step to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh in-memory store with a deterministic clock.
//
// Execution flow:
//  1. Open the scenario's backend
//  2. Create every setup value (any failure aborts the run)
//  3. Execute flow steps, checking expect clauses
//  4. Capture the final state
//  5. Evaluate assertions
//
// A returned error means the scenario could not be executed at all; failed
// expectations are reported in Result.Errors.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	ctx := context.Background()

	st, closeStore, err := openBackend(scenario.Backend)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	h := &Harness{
		clock:  testutil.NewDeterministicClock(),
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.engine = engine.New(st, engine.WithClock(h.clock))

	result := NewResult()
	if err := h.executeSetup(ctx, scenario.Setup, result); err != nil {
		return nil, errors.Wrap(err, "failed to execute setup")
	}

	for i, step := range scenario.Flow {
		h.executeStep(ctx, i, step, result)
	}

	state, err := h.engine.List(ctx, queryir.Params{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read final state")
	}
	for _, rec := range state.Records {
		result.State = append(result.State, rec.Value)
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

func openBackend(backend string) (engine.Store, func(), error) {
	if backend == BackendMemory {
		return store.NewMemory(), func() {}, nil
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create in-memory store")
	}
	return st, func() { _ = st.Close() }, nil
}

// executeSetup creates every setup value.
func (h *Harness) executeSetup(ctx context.Context, setup []string, result *Result) error {
	for i, value := range setup {
		rec, err := h.engine.Create(ctx, value)
		if err != nil {
			return errors.Wrapf(err, "setup step %d (%q)", i, value)
		}

		result.AddTrace(TraceEvent{
			Op:        OpCreate,
			Input:     value,
			Outcome:   OutcomeOK,
			ID:        rec.ID,
			CreatedAt: rec.CreatedAt,
		})
	}
	return nil
}

// executeStep runs one flow step, traces it and checks its expect clause.
func (h *Harness) executeStep(ctx context.Context, index int, step FlowStep, result *Result) {
	ev := TraceEvent{Op: step.Op}
	var rec *ir.StringRecord

	switch step.Op {
	case OpCreate, OpGet:
		ev.Input = step.Value
		var r ir.StringRecord
		var err error
		if step.Op == OpCreate {
			r, err = h.engine.Create(ctx, step.Value)
		} else {
			r, err = h.engine.Get(ctx, step.Value)
		}
		ev.Outcome = outcomeOf(err)
		if err == nil {
			ev.ID = r.ID
			ev.CreatedAt = r.CreatedAt
			rec = &r
		}

	case OpDelete:
		ev.Input = step.Value
		err := h.engine.Delete(ctx, step.Value)
		ev.Outcome = outcomeOf(err)
		if err == nil {
			ev.ID = ir.ID(step.Value)
		}

	case OpList:
		ev.Params = step.Params
		res, err := h.engine.ListValues(ctx, step.Params)
		ev.Outcome = outcomeOf(err)
		if err == nil {
			setMatches(&ev, res.Records, res.Applied)
		}

	case OpQuery:
		ev.Input = step.Query
		res, err := h.engine.FilterNatural(ctx, step.Query)
		ev.Outcome = outcomeOf(err)
		if err == nil {
			setMatches(&ev, res.Records, res.Parsed)
		}
	}

	ev = result.AddTrace(ev)
	h.logger.Debugw("Step executed",
		"step", index,
		"op", ev.Op,
		"input", ev.Input,
		"outcome", ev.Outcome,
	)

	if step.Expect != nil {
		for _, msg := range checkExpect(step.Expect, ev, rec) {
			result.AddError(fmt.Sprintf("flow[%d] %s %q: %s", index, step.Op, ev.Input, msg))
		}
	}
}

func setMatches(ev *TraceEvent, records []ir.StringRecord, applied map[string]any) {
	values := make([]string, len(records))
	for i, r := range records {
		values[i] = r.Value
	}
	count := len(values)

	ev.Values = values
	ev.Count = &count
	ev.Parsed = applied
}

// checkExpect compares a traced step against its expect clause.
func checkExpect(expect *ExpectClause, ev TraceEvent, rec *ir.StringRecord) []string {
	var problems []string

	want := expect.Outcome
	if want == "" {
		want = OutcomeOK
	}
	if ev.Outcome != want {
		// Nothing else is comparable once the outcome differs.
		return []string{fmt.Sprintf("expected outcome %s, got %s", want, ev.Outcome)}
	}

	if expect.CreatedAt != "" && ev.CreatedAt != expect.CreatedAt {
		problems = append(problems, fmt.Sprintf("expected created_at %s, got %s", expect.CreatedAt, ev.CreatedAt))
	}

	if expect.Properties != nil && rec != nil {
		actual, err := normalize(rec.Properties)
		if err != nil {
			return append(problems, err.Error())
		}
		for key, wantValue := range expect.Properties {
			wantNorm, err := normalize(wantValue)
			if err != nil {
				problems = append(problems, fmt.Sprintf("properties.%s: %v", key, err))
				continue
			}
			got, ok := actual.(map[string]any)[key]
			if !ok {
				problems = append(problems, fmt.Sprintf("unknown property %q", key))
				continue
			}
			if !reflect.DeepEqual(got, wantNorm) {
				problems = append(problems, fmt.Sprintf("properties.%s: expected %v, got %v", key, wantNorm, got))
			}
		}
	}

	if expect.Values != nil && !slices.Equal(ev.Values, *expect.Values) {
		problems = append(problems, fmt.Sprintf("expected values %q, got %q", *expect.Values, ev.Values))
	}

	if expect.Parsed != nil {
		got, err := normalize(ev.Parsed)
		if err != nil {
			return append(problems, err.Error())
		}
		wantParsed, err := normalize(expect.Parsed)
		if err != nil {
			return append(problems, fmt.Sprintf("parsed: %v", err))
		}
		if !reflectEqualMaps(got, wantParsed) {
			problems = append(problems, fmt.Sprintf("expected parsed %v, got %v", wantParsed, got))
		}
	}

	return problems
}

// normalize maps v onto the generic JSON model so YAML-decoded expectations
// and Go values compare equal (numbers become float64).
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// reflectEqualMaps treats a nil and an empty map as equal.
func reflectEqualMaps(a, b any) bool {
	am, _ := a.(map[string]any)
	bm, _ := b.(map[string]any)
	if len(am) == 0 && len(bm) == 0 {
		return true
	}
	return reflect.DeepEqual(am, bm)
}
