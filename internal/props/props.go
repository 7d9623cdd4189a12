// Package props computes the property bundle of a string.
//
// Compute is a total, pure function: it accepts any string (empty,
// whitespace-only, multi-byte) and has no failure mode, no I/O and no shared
// state. Characters are Unicode code points throughout.
package props

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/textvault/internal/ir"
)

// Compute derives the properties of value.
func Compute(value string) ir.Properties {
	freq := Frequencies(value)
	return ir.Properties{
		Length:                utf8.RuneCountInString(value),
		IsPalindrome:          IsPalindrome(value),
		UniqueCharacters:      len(freq),
		WordCount:             WordCount(value),
		SHA256Hash:            ir.ContentHash(value),
		CharacterFrequencyMap: freq,
	}
}

// IsPalindrome reports whether the case-folded value reads the same reversed.
// Whitespace and punctuation are kept; only simple (one rune to one rune)
// case folding is applied. The empty string and single characters are
// palindromes.
func IsPalindrome(value string) bool {
	runes := []rune(value)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if foldRune(runes[i]) != foldRune(runes[j]) {
			return false
		}
	}
	return true
}

// foldRune maps r to the smallest rune of its simple case-folding orbit, so
// two runes fold equal exactly when strings.EqualFold would match them.
func foldRune(r rune) rune {
	lowest := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lowest {
			lowest = f
		}
	}
	return lowest
}

// WordCount counts whitespace-delimited tokens. Runs of whitespace collapse
// and leading/trailing whitespace is ignored.
func WordCount(value string) int {
	return len(strings.Fields(value))
}

// Frequencies counts occurrences of each code point in value.
func Frequencies(value string) ir.FrequencyMap {
	freq := make(ir.FrequencyMap)
	for _, r := range value {
		freq[string(r)]++
	}
	return freq
}
