package harness

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/textvault/internal/errors"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Backend selects the store: BackendSQLite (default) or BackendMemory.
	Backend string `yaml:"backend,omitempty"`

	// Setup lists values to create before the flow. Setup steps must succeed.
	Setup []string `yaml:"setup,omitempty"`

	// Flow contains the operations under test, with optional expectations.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the final trace and state.
	Assertions []Assertion `yaml:"assertions"`
}

// Backends a scenario can run against.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Operations a flow step can perform.
const (
	OpCreate = "create"
	OpGet    = "get"
	OpDelete = "delete"
	OpList   = "list"
	OpQuery  = "query"
)

var validOps = []string{OpCreate, OpGet, OpDelete, OpList, OpQuery}

// FlowStep is one engine operation.
type FlowStep struct {
	Op string `yaml:"op"`

	// Value is the record text for create, get and delete.
	Value string `yaml:"value,omitempty"`

	// Params are the raw filter parameters for list.
	Params map[string]string `yaml:"params,omitempty"`

	// Query is the natural-language text for query.
	Query string `yaml:"query,omitempty"`

	// Expect specifies the expected outcome. If nil, nothing is checked.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected result of a step.
// Unset fields are not checked.
type ExpectClause struct {
	// Outcome is "OK" or an engine error code. Empty means "OK".
	Outcome string `yaml:"outcome,omitempty"`

	// Properties is a subset match against the record's properties
	// (create and get).
	Properties map[string]any `yaml:"properties,omitempty"`

	// CreatedAt is the expected created_at (create and get).
	CreatedAt string `yaml:"created_at,omitempty"`

	// Values is the exact, ordered list of matching values (list and query).
	Values *[]string `yaml:"values,omitempty"`

	// Parsed is the exact applied filter map (list and query).
	Parsed map[string]any `yaml:"parsed,omitempty"`
}

// Assertion validates trace or final state.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Op is the operation name (trace_contains, trace_count).
	Op string `yaml:"op,omitempty"`

	// Input narrows trace_contains to events with this value or query.
	Input string `yaml:"input,omitempty"`

	// Inputs is the expected order of first appearance (trace_order).
	Inputs []string `yaml:"inputs,omitempty"`

	// Count is the expected number of occurrences (trace_count).
	Count int `yaml:"count,omitempty"`

	// Values is the expected stored content, in order (final_state).
	Values []string `yaml:"values,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
	AssertFinalState    = "final_state"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read scenario file")
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML")
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, errors.Wrap(err, "invalid scenario")
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml scenario in dir, sorted by file name.
// Scenario names must be unique within the directory.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scenarios")
	}
	if len(paths) == 0 {
		return nil, errors.Newf("no scenarios found in %s", dir)
	}
	slices.Sort(paths)

	seen := make(map[string]string, len(paths))
	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", filepath.Base(path))
		}
		if prev, ok := seen[s.Name]; ok {
			return nil, errors.Newf("duplicate scenario name %q in %s and %s", s.Name, prev, filepath.Base(path))
		}
		seen[s.Name] = filepath.Base(path)
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return errors.New("name is required")
	}

	if s.Description == "" {
		return errors.New("description is required")
	}

	switch s.Backend {
	case "", BackendSQLite, BackendMemory:
	default:
		return errors.Newf("unknown backend %q", s.Backend)
	}

	for i, value := range s.Setup {
		if value == "" {
			return errors.Newf("setup[%d]: value must be non-empty", i)
		}
	}

	if len(s.Flow) == 0 {
		return errors.New("flow list is required and must be non-empty")
	}

	for i, step := range s.Flow {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	if len(s.Assertions) == 0 {
		return errors.New("assertions list is required and must be non-empty")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep checks that a step only carries the fields its op uses.
func validateStep(index int, step *FlowStep) error {
	if !slices.Contains(validOps, step.Op) {
		return errors.Newf("flow[%d]: unknown op %q", index, step.Op)
	}

	switch step.Op {
	case OpCreate, OpGet, OpDelete:
		if step.Params != nil || step.Query != "" {
			return errors.Newf("flow[%d]: %s takes only value", index, step.Op)
		}
	case OpList:
		if step.Value != "" || step.Query != "" {
			return errors.Newf("flow[%d]: list takes only params", index)
		}
	case OpQuery:
		if step.Value != "" || step.Params != nil {
			return errors.Newf("flow[%d]: query takes only query", index)
		}
	}

	if e := step.Expect; e != nil {
		isRecordOp := step.Op == OpCreate || step.Op == OpGet
		isListOp := step.Op == OpList || step.Op == OpQuery
		if (e.Properties != nil || e.CreatedAt != "") && !isRecordOp {
			return errors.Newf("flow[%d].expect: properties and created_at apply to create and get", index)
		}
		if (e.Values != nil || e.Parsed != nil) && !isListOp {
			return errors.Newf("flow[%d].expect: values and parsed apply to list and query", index)
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return errors.Newf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTraceContains:
		if a.Op == "" {
			return errors.Newf("assertions[%d]: op is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Inputs) == 0 {
			return errors.Newf("assertions[%d]: inputs list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return errors.Newf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count < 0 {
			return errors.Newf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	case AssertFinalState:
		// An empty values list asserts an empty store.
	default:
		return errors.Newf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
