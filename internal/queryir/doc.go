// Package queryir is the structured filter layer shared by every query path.
//
// Both query surfaces end here: the list endpoint parses its parameters with
// ParseValues, the natural-language translator (package nlquery) emits a
// Params value directly. Build validates the parameters and turns them into a
// conjunction of typed predicates plus an echo of what was applied:
//
//	[query string] --ParseValues--> Params --Build--> Filter{Where, Applied}
//	[English text] --nlquery------> Params --^
//
// A Filter is consumed by a store: the SQLite store compiles it to SQL
// (package querysql), the in-memory store evaluates it with Matches. Both must
// return the same records for the same state.
//
// SEALED INTERFACES:
//
// Predicate is sealed with a marker method; only this package defines
// predicates, so backends can switch exhaustively:
//
//	switch p := pred.(type) {
//	case PalindromeEquals:
//	case LengthAtLeast:
//	case LengthAtMost:
//	case WordCountEquals:
//	case ContainsCharacter:
//	case And:
//	}
//
// SEMANTICS:
//
// contains_character is a case-sensitive, literal substring test while
// is_palindrome compares case-folded text. The asymmetry is deliberate and
// matches the stored data.
package queryir
