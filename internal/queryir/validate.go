package queryir

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/roach88/textvault/internal/errors"
)

// Validate checks every set parameter against its own constraint:
//   - min_length, max_length, word_count must be >= 0
//   - contains_character must be exactly one character
//
// All problems are reported together. The returned error wraps
// errors.ErrUnparseableQuery. min_length > max_length is not an error; it
// simply matches nothing.
//
// Validate is a pure function with no side effects.
func Validate(p Params) error {
	v := &validator{}
	v.nonNegative(ParamMinLength, p.MinLength)
	v.nonNegative(ParamMaxLength, p.MaxLength)
	v.nonNegative(ParamWordCount, p.WordCount)
	if p.ContainsCharacter != nil {
		v.singleCharacter(ParamContainsCharacter, *p.ContainsCharacter)
	}

	if len(v.problems) == 0 {
		return nil
	}
	return errors.Wrapf(errors.ErrUnparseableQuery, "%s", strings.Join(v.problems, "; "))
}

// validator accumulates problems during validation.
type validator struct {
	problems []string
}

func (v *validator) addProblem(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) nonNegative(name string, n *int) {
	if n != nil && *n < 0 {
		v.addProblem("%s must be >= 0, got %d", name, *n)
	}
}

func (v *validator) singleCharacter(name, s string) {
	if !utf8.ValidString(s) {
		v.addProblem("%s must be valid UTF-8", name)
		return
	}
	if n := utf8.RuneCountInString(s); n != 1 {
		v.addProblem("%s must be exactly one character, got %d", name, n)
	}
}
