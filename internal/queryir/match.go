package queryir

import (
	"strings"

	"github.com/roach88/textvault/internal/ir"
)

// Matches evaluates pred against rec in memory.
// It is the reference semantics every store backend must agree with.
func Matches(pred Predicate, rec ir.StringRecord) bool {
	switch p := pred.(type) {
	case nil:
		return true
	case PalindromeEquals:
		return rec.Properties.IsPalindrome == p.Value
	case LengthAtLeast:
		return rec.Properties.Length >= p.Min
	case LengthAtMost:
		return rec.Properties.Length <= p.Max
	case WordCountEquals:
		return rec.Properties.WordCount == p.Count
	case ContainsCharacter:
		return strings.Contains(rec.Value, p.Char)
	case And:
		for _, sub := range p.Predicates {
			if !Matches(sub, rec) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// MatchesFilter reports whether rec satisfies every predicate of f.
func MatchesFilter(f Filter, rec ir.StringRecord) bool {
	return Matches(f.Where, rec)
}
