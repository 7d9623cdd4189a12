package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/roach88/textvault/internal/ir"
)

// recordView renders a record. JSON output is identical to ir.StringRecord.
type recordView ir.StringRecord

func (r recordView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "id:                %s\n", r.ID)
	fmt.Fprintf(&b, "value:             %q\n", r.Value)
	fmt.Fprintf(&b, "length:            %d\n", r.Properties.Length)
	fmt.Fprintf(&b, "is_palindrome:     %t\n", r.Properties.IsPalindrome)
	fmt.Fprintf(&b, "unique_characters: %d\n", r.Properties.UniqueCharacters)
	fmt.Fprintf(&b, "word_count:        %d\n", r.Properties.WordCount)
	fmt.Fprintf(&b, "frequencies:       %s\n", formatFrequencies(r.Properties.CharacterFrequencyMap))
	fmt.Fprintf(&b, "created_at:        %s", r.CreatedAt)
	return b.String()
}

// listView is the result of list and query.
type listView struct {
	Data           []ir.StringRecord `json:"data"`
	Count          int               `json:"count"`
	FiltersApplied map[string]any    `json:"filters_applied,omitempty"`
	Original       string            `json:"original,omitempty"`
}

func (l listView) String() string {
	var b strings.Builder
	if l.Original != "" {
		fmt.Fprintf(&b, "query:   %q\n", l.Original)
	}
	fmt.Fprintf(&b, "filters: %s\n", formatFilters(l.FiltersApplied))
	fmt.Fprintf(&b, "%d record(s)", l.Count)
	for _, r := range l.Data {
		fmt.Fprintf(&b, "\n  %s  len=%-4d palindrome=%-5t words=%-3d %q",
			r.ID[:12], r.Properties.Length, r.Properties.IsPalindrome, r.Properties.WordCount, r.Value)
	}
	return b.String()
}

// formatFrequencies renders a frequency map in canonical key order.
func formatFrequencies(m ir.FrequencyMap) string {
	data, err := ir.MarshalFrequencyMap(m)
	if err != nil {
		return fmt.Sprintf("%v", map[string]int(m))
	}
	return string(data)
}

func formatFilters(applied map[string]any) string {
	if len(applied) == 0 {
		return "(none)"
	}
	keys := slices.Sorted(maps.Keys(applied))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, applied[k])
	}
	return strings.Join(parts, " ")
}
