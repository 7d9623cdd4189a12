package props

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/roach88/textvault/internal/ir"
)

func TestCompute_Palindrome(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"Racecar", true},
		{"hello", false},
		{"", true},
		{"x", true},
		{"Aa", true},
		{"ab", false},
		{"never odd or even", false}, // spaces are not stripped
		{"a b a", true},
		{"A man, a plan", false},
		{"\u00e9t\u00e9", true},
		{"\u00c9t\u00c9", true},
		{"\u65e5\u672c\u65e5", true},
		{"Kk\u212a", true}, // KELVIN SIGN folds with k
		{"\u00dfs", false}, // simple folding never expands ß
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.value).IsPalindrome)
		})
	}
}

func TestCompute_UniqueCharactersAndFrequencies(t *testing.T) {
	p := Compute("aabbc")

	assert.Equal(t, 3, p.UniqueCharacters)
	assert.Equal(t, ir.FrequencyMap{"a": 2, "b": 2, "c": 1}, p.CharacterFrequencyMap)
}

func TestCompute_CountsCodePointsNotBytes(t *testing.T) {
	p := Compute("h\u00e9llo \u4e16\u754c")

	assert.Equal(t, 8, p.Length)
	assert.Equal(t, 1, p.CharacterFrequencyMap["\u00e9"])
	assert.Equal(t, 1, p.CharacterFrequencyMap["\u4e16"])
	assert.Equal(t, 2, p.CharacterFrequencyMap["l"])
	assert.Equal(t, 7, p.UniqueCharacters, "h, e-acute, l, o, space and two CJK characters")
}

func TestCompute_CaseSensitiveCounting(t *testing.T) {
	p := Compute("Aa")

	assert.Equal(t, 2, p.UniqueCharacters)
	assert.Equal(t, ir.FrequencyMap{"A": 1, "a": 1}, p.CharacterFrequencyMap)
}

func TestCompute_WordCount(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"one two  three", 3},
		{"", 0},
		{"   ", 0},
		{"  leading and trailing  ", 3},
		{"tab\tand\nnewline", 3},
		{"single", 1},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.value).WordCount)
		})
	}
}

func TestCompute_Empty(t *testing.T) {
	p := Compute("")

	assert.Equal(t, 0, p.Length)
	assert.True(t, p.IsPalindrome)
	assert.Equal(t, 0, p.UniqueCharacters)
	assert.Equal(t, 0, p.WordCount)
	assert.Equal(t, ir.ContentHash(""), p.SHA256Hash)
	assert.Empty(t, p.CharacterFrequencyMap)
	assert.NotNil(t, p.CharacterFrequencyMap)
}

func TestCompute_HashMatchesIdentity(t *testing.T) {
	assert.Equal(t, ir.ID("hello world"), Compute("hello world").SHA256Hash)
}

func TestCompute_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "value")
		p := Compute(s)

		if !reflect.DeepEqual(p, Compute(s)) {
			t.Fatalf("Compute(%q) not deterministic", s)
		}
		if p.UniqueCharacters != len(p.CharacterFrequencyMap) {
			t.Fatalf("unique %d != map size %d", p.UniqueCharacters, len(p.CharacterFrequencyMap))
		}
		total := 0
		for _, n := range p.CharacterFrequencyMap {
			total += n
		}
		if total != p.Length {
			t.Fatalf("frequency total %d != length %d", total, p.Length)
		}
		if p.UniqueCharacters > p.Length {
			t.Fatalf("unique %d > length %d", p.UniqueCharacters, p.Length)
		}
		if p.IsPalindrome != IsPalindrome(reverse(s)) {
			t.Fatalf("palindrome flag of %q differs from its reverse", s)
		}
		if p.WordCount != len(strings.Fields(s)) {
			t.Fatalf("word count mismatch for %q", s)
		}
	})
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
