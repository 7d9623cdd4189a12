package queryir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/textvault/internal/errors"
)

// Parameter names, in the order they are applied.
const (
	ParamIsPalindrome      = "is_palindrome"
	ParamMinLength         = "min_length"
	ParamMaxLength         = "max_length"
	ParamWordCount         = "word_count"
	ParamContainsCharacter = "contains_character"
)

// ParamNames lists every recognised parameter in application order.
var ParamNames = []string{
	ParamIsPalindrome,
	ParamMinLength,
	ParamMaxLength,
	ParamWordCount,
	ParamContainsCharacter,
}

// Params is the typed set of structured filter parameters.
// A nil field means no constraint from that dimension.
type Params struct {
	IsPalindrome      *bool
	MinLength         *int
	MaxLength         *int
	WordCount         *int
	ContainsCharacter *string
}

// Ptr returns a pointer to v. Handy for building Params literals.
func Ptr[T any](v T) *T {
	return &v
}

// IsEmpty reports whether no parameter is set.
func (p Params) IsEmpty() bool {
	return p.IsPalindrome == nil && p.MinLength == nil && p.MaxLength == nil &&
		p.WordCount == nil && p.ContainsCharacter == nil
}

// Applied returns the set parameters keyed by name.
func (p Params) Applied() map[string]any {
	applied := make(map[string]any)
	if p.IsPalindrome != nil {
		applied[ParamIsPalindrome] = *p.IsPalindrome
	}
	if p.MinLength != nil {
		applied[ParamMinLength] = *p.MinLength
	}
	if p.MaxLength != nil {
		applied[ParamMaxLength] = *p.MaxLength
	}
	if p.WordCount != nil {
		applied[ParamWordCount] = *p.WordCount
	}
	if p.ContainsCharacter != nil {
		applied[ParamContainsCharacter] = *p.ContainsCharacter
	}
	return applied
}

// ParseValues reads structured parameters from string key/value pairs, as
// they arrive in a query string or on the command line. Unknown keys are
// ignored. A recognised key with a malformed value is an
// errors.ErrUnparseableQuery.
//
// ParseValues only converts types; range checks happen in Validate.
func ParseValues(values map[string]string) (Params, error) {
	var p Params
	var problems []string

	if raw, ok := values[ParamIsPalindrome]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a boolean, got %q", ParamIsPalindrome, raw))
		} else {
			p.IsPalindrome = &b
		}
	}

	for _, field := range []struct {
		name string
		dst  **int
	}{
		{ParamMinLength, &p.MinLength},
		{ParamMaxLength, &p.MaxLength},
		{ParamWordCount, &p.WordCount},
	} {
		raw, ok := values[field.name]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be an integer, got %q", field.name, raw))
			continue
		}
		*field.dst = &n
	}

	if raw, ok := values[ParamContainsCharacter]; ok {
		// Not trimmed: a single space is a valid character to search for.
		c := raw
		p.ContainsCharacter = &c
	}

	if len(problems) > 0 {
		return Params{}, errors.Wrapf(errors.ErrUnparseableQuery, "%s", strings.Join(problems, "; "))
	}
	return p, nil
}

// Build validates p and converts it to a Filter.
// Predicates are emitted in ParamNames order so compiled SQL is stable.
func Build(p Params) (Filter, error) {
	if err := Validate(p); err != nil {
		return Filter{}, err
	}

	preds := []Predicate{}
	if p.IsPalindrome != nil {
		preds = append(preds, PalindromeEquals{Value: *p.IsPalindrome})
	}
	if p.MinLength != nil {
		preds = append(preds, LengthAtLeast{Min: *p.MinLength})
	}
	if p.MaxLength != nil {
		preds = append(preds, LengthAtMost{Max: *p.MaxLength})
	}
	if p.WordCount != nil {
		preds = append(preds, WordCountEquals{Count: *p.WordCount})
	}
	if p.ContainsCharacter != nil {
		preds = append(preds, ContainsCharacter{Char: *p.ContainsCharacter})
	}

	return Filter{
		Where:   And{Predicates: preds},
		Applied: p.Applied(),
	}, nil
}
