package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalScenario = `
name: minimal
description: "One create"
flow:
  - op: create
    value: abc
assertions:
  - type: final_state
    values: [abc]
`

func TestParseScenario_Minimal(t *testing.T) {
	s, err := ParseScenario([]byte(minimalScenario))
	require.NoError(t, err)

	assert.Equal(t, "minimal", s.Name)
	assert.Equal(t, "", s.Backend)
	require.Len(t, s.Flow, 1)
	assert.Equal(t, OpCreate, s.Flow[0].Op)
	assert.Equal(t, "abc", s.Flow[0].Value)
	assert.Nil(t, s.Flow[0].Expect)
}

func TestParseScenario_ExpectValues(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: values
description: "Explicit empty values"
flow:
  - op: list
    params: { min_length: "100" }
    expect:
      values: []
  - op: list
assertions:
  - type: final_state
`))
	require.NoError(t, err)

	require.NotNil(t, s.Flow[0].Expect.Values, "empty list must be distinguishable from absent")
	assert.Empty(t, *s.Flow[0].Expect.Values)
	assert.Equal(t, map[string]string{"min_length": "100"}, s.Flow[0].Params)
	assert.Nil(t, s.Flow[1].Expect)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown_field",
			yaml:    "name: x\ndescription: d\nflo: []\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "missing_name",
			yaml:    "description: d\nflow: [{op: get, value: a}]\nassertions: [{type: final_state}]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing_description",
			yaml:    "name: x\nflow: [{op: get, value: a}]\nassertions: [{type: final_state}]\n",
			wantErr: "description is required",
		},
		{
			name:    "empty_flow",
			yaml:    "name: x\ndescription: d\nassertions: [{type: final_state}]\n",
			wantErr: "flow list is required",
		},
		{
			name:    "missing_assertions",
			yaml:    "name: x\ndescription: d\nflow: [{op: get, value: a}]\n",
			wantErr: "assertions list is required",
		},
		{
			name:    "unknown_backend",
			yaml:    "name: x\ndescription: d\nbackend: postgres\nflow: [{op: get, value: a}]\nassertions: [{type: final_state}]\n",
			wantErr: `unknown backend "postgres"`,
		},
		{
			name:    "empty_setup_value",
			yaml:    "name: x\ndescription: d\nsetup: [\"\"]\nflow: [{op: get, value: a}]\nassertions: [{type: final_state}]\n",
			wantErr: "setup[0]",
		},
		{
			name:    "unknown_op",
			yaml:    "name: x\ndescription: d\nflow: [{op: upsert, value: a}]\nassertions: [{type: final_state}]\n",
			wantErr: `unknown op "upsert"`,
		},
		{
			name:    "query_on_get",
			yaml:    "name: x\ndescription: d\nflow: [{op: get, query: q}]\nassertions: [{type: final_state}]\n",
			wantErr: "get takes only value",
		},
		{
			name:    "value_on_list",
			yaml:    "name: x\ndescription: d\nflow: [{op: list, value: a}]\nassertions: [{type: final_state}]\n",
			wantErr: "list takes only params",
		},
		{
			name:    "params_on_query",
			yaml:    "name: x\ndescription: d\nflow: [{op: query, params: {a: b}}]\nassertions: [{type: final_state}]\n",
			wantErr: "query takes only query",
		},
		{
			name:    "values_on_create",
			yaml:    "name: x\ndescription: d\nflow: [{op: create, value: a, expect: {values: [a]}}]\nassertions: [{type: final_state}]\n",
			wantErr: "values and parsed apply to list and query",
		},
		{
			name:    "properties_on_list",
			yaml:    "name: x\ndescription: d\nflow: [{op: list, expect: {properties: {length: 1}}}]\nassertions: [{type: final_state}]\n",
			wantErr: "properties and created_at apply to create and get",
		},
		{
			name:    "assertion_without_type",
			yaml:    "name: x\ndescription: d\nflow: [{op: get, value: a}]\nassertions: [{op: get}]\n",
			wantErr: "type is required",
		},
		{
			name:    "unknown_assertion",
			yaml:    "name: x\ndescription: d\nflow: [{op: get, value: a}]\nassertions: [{type: trace_magic}]\n",
			wantErr: `unknown assertion type "trace_magic"`,
		},
		{
			name:    "trace_contains_without_op",
			yaml:    "name: x\ndescription: d\nflow: [{op: get, value: a}]\nassertions: [{type: trace_contains}]\n",
			wantErr: "op is required for trace_contains",
		},
		{
			name:    "trace_order_without_inputs",
			yaml:    "name: x\ndescription: d\nflow: [{op: get, value: a}]\nassertions: [{type: trace_order}]\n",
			wantErr: "inputs list is required",
		},
		{
			name:    "negative_count",
			yaml:    "name: x\ndescription: d\nflow: [{op: get, value: a}]\nassertions: [{type: trace_count, op: get, count: -1}]\n",
			wantErr: "count must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_FileErrors(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	// Sorted by file name.
	assert.Equal(t, []string{"delete_and_reinsert", "filtering", "identity_and_conflict", "natural_language"}, names)
}

func TestLoadScenarios_Errors(t *testing.T) {
	t.Run("empty_dir", func(t *testing.T) {
		_, err := LoadScenarios(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no scenarios found")
	})

	t.Run("duplicate_names", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(minimalScenario), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(minimalScenario), 0o644))

		_, err := LoadScenarios(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate scenario name "minimal"`)
	})

	t.Run("invalid_file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: x\n"), 0o644))

		_, err := LoadScenarios(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.yaml")
	})
}
