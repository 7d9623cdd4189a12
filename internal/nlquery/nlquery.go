// Package nlquery translates a small, fixed set of English phrases into
// structured filter parameters.
//
// This is pattern matching, not language understanding. The query is
// lower-cased and trimmed, then every rule in Rules is tried in order; each
// rule that matches contributes its parameters. The output is a
// queryir.Params value, so natural-language queries always run through the
// same filter engine as structured ones.
//
// A query that matches no rule is an errors.ErrUnparseableQuery; callers must
// not fall back to an unfiltered scan.
package nlquery

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/textvault/internal/errors"
	"github.com/roach88/textvault/internal/queryir"
)

// Rule names, as reported in Translation.Matched.
const (
	RuleSingleWordPalindromic = "single_word_palindromic"
	RuleLongerThan            = "longer_than"
	RulePalindromic           = "palindromic"
	RuleContainsLetter        = "contains_the_letter"
	RuleFirstVowel            = "first_vowel"
)

const singleWordPalindromic = "single word palindromic"

var (
	longerThanPattern     = regexp.MustCompile(`longer than (\p{Nd}+)`)
	containsLetterPattern = regexp.MustCompile(`contains the letter ([\p{L}\p{N}_])`)
)

// Rule is one (pattern, effect) pair.
//
// Apply inspects the normalised query and the names of rules that already
// fired, and sets parameters on p. It reports whether the rule matched.
type Rule struct {
	Name  string
	Apply func(query string, fired map[string]bool, p *queryir.Params) (bool, error)
}

// Rules is the translation table, evaluated top to bottom.
//
// Precedence:
//  1. single_word_palindromic owns the palindrome + word-count portion;
//     palindromic (3) does not fire when the phrase is present.
//  2. longer_than combines with every other rule.
//  3. palindromic fires only without the single-word phrase.
//  4. contains_the_letter combines with every other rule.
//  5. first_vowel fires only when contains_the_letter did not; it means 'a'.
var Rules = []Rule{
	{
		Name: RuleSingleWordPalindromic,
		Apply: func(q string, _ map[string]bool, p *queryir.Params) (bool, error) {
			if !strings.Contains(q, singleWordPalindromic) {
				return false, nil
			}
			p.WordCount = queryir.Ptr(1)
			p.IsPalindrome = queryir.Ptr(true)
			return true, nil
		},
	},
	{
		Name: RuleLongerThan,
		Apply: func(q string, _ map[string]bool, p *queryir.Params) (bool, error) {
			m := longerThanPattern.FindStringSubmatch(q)
			if m == nil {
				return false, nil
			}
			n, err := strconv.Atoi(asciiDigits(m[1]))
			if err != nil || n == math.MaxInt {
				return false, errors.Wrapf(errors.ErrUnparseableQuery, "length %q out of range", m[1])
			}
			// Strictly longer than n means at least n+1.
			p.MinLength = queryir.Ptr(n + 1)
			return true, nil
		},
	},
	{
		Name: RulePalindromic,
		Apply: func(q string, _ map[string]bool, p *queryir.Params) (bool, error) {
			if !strings.Contains(q, "palindromic") || strings.Contains(q, singleWordPalindromic) {
				return false, nil
			}
			p.IsPalindrome = queryir.Ptr(true)
			return true, nil
		},
	},
	{
		Name: RuleContainsLetter,
		Apply: func(q string, _ map[string]bool, p *queryir.Params) (bool, error) {
			m := containsLetterPattern.FindStringSubmatch(q)
			if m == nil {
				return false, nil
			}
			p.ContainsCharacter = queryir.Ptr(m[1])
			return true, nil
		},
	},
	{
		Name: RuleFirstVowel,
		Apply: func(q string, fired map[string]bool, p *queryir.Params) (bool, error) {
			if fired[RuleContainsLetter] || !strings.Contains(q, "first vowel") {
				return false, nil
			}
			p.ContainsCharacter = queryir.Ptr("a")
			return true, nil
		},
	},
}

// Translation is the outcome of interpreting a query.
type Translation struct {
	Original string         // Query as received
	Params   queryir.Params // Accumulated parameters
	Matched  []string       // Names of the rules that fired, in order
}

// Translate maps query to structured filter parameters.
func Translate(query string) (queryir.Params, error) {
	tr, err := Interpret(query)
	if err != nil {
		return queryir.Params{}, err
	}
	return tr.Params, nil
}

// Interpret runs every rule against query and reports which fired.
// The returned parameters always pass queryir.Validate.
func Interpret(query string) (Translation, error) {
	q := Normalize(query)
	tr := Translation{Original: query}
	fired := make(map[string]bool, len(Rules))

	for _, r := range Rules {
		ok, err := r.Apply(q, fired, &tr.Params)
		if err != nil {
			return Translation{}, errors.Wrapf(err, "rule %s", r.Name)
		}
		if ok {
			fired[r.Name] = true
			tr.Matched = append(tr.Matched, r.Name)
		}
	}

	if len(tr.Matched) == 0 {
		return Translation{}, errors.Wrapf(errors.ErrUnparseableQuery, "no recognised phrase in %q", query)
	}
	if err := queryir.Validate(tr.Params); err != nil {
		return Translation{}, err
	}
	return tr, nil
}

// Normalize lower-cases and trims a query before matching.
func Normalize(query string) string {
	return strings.TrimSpace(cases.Lower(language.Und).String(query))
}

// asciiDigits rewrites every decimal digit in s, from any script, as its
// ASCII equivalent so "５" and "٥" parse like "5".
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if v, ok := digitValue(r); ok {
			return '0' + rune(v)
		}
		return r
	}, s)
}

// digitValue relies on Unicode assigning decimal digits in contiguous runs
// of ten, zero first.
func digitValue(r rune) (int, bool) {
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi && rg.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi && rg.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}
