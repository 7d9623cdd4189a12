// Package harness runs scripted conformance scenarios against the engine.
//
// A scenario is a YAML file that seeds records, drives a sequence of
// engine operations and asserts on the outcome of each step, on the trace
// of operations and on the final contents of the store.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	backend: sqlite            # sqlite (default) or memory
//	setup:
//	  - racecar
//	  - hello world
//	flow:
//	  - op: create
//	    value: racecar
//	    expect:
//	      outcome: CONFLICT
//	  - op: list
//	    params: { is_palindrome: "true" }
//	    expect:
//	      outcome: OK
//	      values: [racecar]
//	  - op: query
//	    query: single word palindromic
//	    expect:
//	      parsed: { is_palindrome: true, word_count: 1 }
//	assertions:
//	  - type: trace_count
//	    op: create
//	    count: 3
//	  - type: final_state
//	    values: [racecar, hello world]
//
// # Operations
//
//   - create: Engine.Create(value)
//   - get: Engine.Get(value)
//   - delete: Engine.Delete(value)
//   - list: Engine.ListValues(params), params as query-string values
//   - query: Engine.FilterNatural(query)
//
// Every step records an outcome: "OK" or the engine.ErrorCode of the
// returned error.
//
// # Assertion Types
//
//   - trace_contains: an operation with the given op (and input) was traced
//   - trace_order: the given inputs were traced in this order
//   - trace_count: op appears exactly count times
//   - final_state: an unfiltered list returns exactly values, in order
//
// # Deterministic Testing
//
// Each run gets a fresh in-memory store and a testutil.DeterministicClock,
// so ids, created_at values and the trace are identical across runs and can
// be compared against golden files with RunWithGolden.
package harness
