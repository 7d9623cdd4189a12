package harness

import "github.com/roach88/textvault/internal/engine"

// OutcomeOK is the outcome of a step that returned no error.
const OutcomeOK = "OK"

// TraceEvent records one executed operation.
type TraceEvent struct {
	Seq       int64             `json:"seq"`
	Op        string            `json:"op"`
	Input     string            `json:"input,omitempty"` // Value or query text
	Params    map[string]string `json:"params,omitempty"`
	Outcome   string            `json:"outcome"`
	ID        string            `json:"id,omitempty"`
	CreatedAt string            `json:"created_at,omitempty"`
	Values    []string          `json:"values,omitempty"`
	Count     *int              `json:"count,omitempty"` // Set for list and query
	Parsed    map[string]any    `json:"parsed,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace contains every setup and flow operation in execution order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// State is the value of every stored record after the flow, in
	// insertion order.
	State []string `json:"state"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
		State:  []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends ev to the trace, assigning the next sequence number.
func (r *Result) AddTrace(ev TraceEvent) TraceEvent {
	ev.Seq = int64(len(r.Trace) + 1)
	r.Trace = append(r.Trace, ev)
	return ev
}

// outcomeOf maps an engine error to a trace outcome.
func outcomeOf(err error) string {
	if err == nil {
		return OutcomeOK
	}
	return string(engine.Code(err))
}
