package queryir

// Predicate is a single matching condition evaluated against a record.
//
// This is a sealed interface - only types in this package implement it.
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// PalindromeEquals matches records whose is_palindrome property equals Value.
type PalindromeEquals struct {
	Value bool
}

func (PalindromeEquals) predicateNode() {}

// LengthAtLeast matches records with length >= Min.
type LengthAtLeast struct {
	Min int
}

func (LengthAtLeast) predicateNode() {}

// LengthAtMost matches records with length <= Max.
type LengthAtMost struct {
	Max int
}

func (LengthAtMost) predicateNode() {}

// WordCountEquals matches records with exactly Count words.
type WordCountEquals struct {
	Count int
}

func (WordCountEquals) predicateNode() {}

// ContainsCharacter matches records whose value contains Char literally.
// Char is a single character; comparison is case-sensitive.
type ContainsCharacter struct {
	Char string
}

func (ContainsCharacter) predicateNode() {}

// And is a conjunction of predicates (all must be true).
// An empty And is always true.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// Filter is the result of Build: the predicate set to evaluate and the echo
// of the parameters that produced it.
type Filter struct {
	// Where holds one predicate per applied parameter.
	Where And

	// Applied maps parameter name to the value used. Callers return it so
	// clients can confirm how their request was interpreted.
	Applied map[string]any
}

// IsEmpty reports whether the filter places no constraint on records.
func (f Filter) IsEmpty() bool {
	return len(f.Where.Predicates) == 0
}
