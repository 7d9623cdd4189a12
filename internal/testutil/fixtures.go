package testutil

import (
	_ "embed"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/roach88/textvault/internal/ir"
)

//go:embed fixtures/strings.yaml
var fixturesYAML []byte

// Fixtures is the shared record set and the filters evaluated against it.
type Fixtures struct {
	Values  []string     `yaml:"values"`
	Filters []FilterCase `yaml:"filters"`
	Queries []QueryCase  `yaml:"queries"`
}

// FilterCase is a structured filter and the values it must return.
type FilterCase struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
	Expect []string          `yaml:"expect"`
}

// QueryCase is a natural-language query and the values it must return.
type QueryCase struct {
	Name   string   `yaml:"name"`
	Query  string   `yaml:"query"`
	Expect []string `yaml:"expect"`
}

// LoadFixtures decodes the embedded fixture file.
// Expect lists are never nil.
func LoadFixtures() (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	for i := range f.Filters {
		if f.Filters[i].Expect == nil {
			f.Filters[i].Expect = []string{}
		}
		if f.Filters[i].Params == nil {
			f.Filters[i].Params = map[string]string{}
		}
	}
	for i := range f.Queries {
		if f.Queries[i].Expect == nil {
			f.Queries[i].Expect = []string{}
		}
	}
	return f, nil
}

// MustLoadFixtures loads the fixtures or fails the test.
func MustLoadFixtures(t testing.TB) Fixtures {
	t.Helper()
	f, err := LoadFixtures()
	if err != nil {
		t.Fatalf("LoadFixtures() failed: %v", err)
	}
	return f
}

// Values extracts record values in order. The result is never nil.
func Values(records []ir.StringRecord) []string {
	values := make([]string, 0, len(records))
	for _, r := range records {
		values = append(values, r.Value)
	}
	return values
}
