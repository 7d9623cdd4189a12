package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/textvault/internal/errors"
)

func TestParseValues_AllParameters(t *testing.T) {
	p, err := ParseValues(map[string]string{
		"is_palindrome":      "true",
		"min_length":         "3",
		"max_length":         "10",
		"word_count":         "1",
		"contains_character": "a",
	})
	require.NoError(t, err)

	assert.Equal(t, Params{
		IsPalindrome:      Ptr(true),
		MinLength:         Ptr(3),
		MaxLength:         Ptr(10),
		WordCount:         Ptr(1),
		ContainsCharacter: Ptr("a"),
	}, p)
}

func TestParseValues_Empty(t *testing.T) {
	p, err := ParseValues(nil)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestParseValues_IgnoresUnknownKeys(t *testing.T) {
	p, err := ParseValues(map[string]string{"limit": "10", "min_length": "2"})
	require.NoError(t, err)
	assert.Equal(t, Params{MinLength: Ptr(2)}, p)
}

func TestParseValues_KeepsSpaceCharacter(t *testing.T) {
	p, err := ParseValues(map[string]string{"contains_character": " "})
	require.NoError(t, err)
	require.NotNil(t, p.ContainsCharacter)
	assert.Equal(t, " ", *p.ContainsCharacter)
}

func TestParseValues_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{"bool", map[string]string{"is_palindrome": "maybe"}, "is_palindrome must be a boolean"},
		{"int", map[string]string{"min_length": "three"}, "min_length must be an integer"},
		{"empty int", map[string]string{"word_count": ""}, "word_count must be an integer"},
		{"float", map[string]string{"max_length": "2.5"}, "max_length must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValues(tt.values)
			require.Error(t, err)
			assert.True(t, errors.IsUnparseableQuery(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuild_EchoesAppliedParameters(t *testing.T) {
	f, err := Build(Params{MinLength: Ptr(3), ContainsCharacter: Ptr("a")})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"min_length": 3, "contains_character": "a"}, f.Applied)
	assert.Equal(t, And{Predicates: []Predicate{
		LengthAtLeast{Min: 3},
		ContainsCharacter{Char: "a"},
	}}, f.Where)
}

func TestBuild_PredicateOrderIsStable(t *testing.T) {
	f, err := Build(Params{
		ContainsCharacter: Ptr("z"),
		WordCount:         Ptr(2),
		MaxLength:         Ptr(9),
		MinLength:         Ptr(1),
		IsPalindrome:      Ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, []Predicate{
		PalindromeEquals{Value: false},
		LengthAtLeast{Min: 1},
		LengthAtMost{Max: 9},
		WordCountEquals{Count: 2},
		ContainsCharacter{Char: "z"},
	}, f.Where.Predicates)
	assert.Len(t, f.Applied, 5)
}

func TestBuild_EmptyParams(t *testing.T) {
	f, err := Build(Params{})
	require.NoError(t, err)

	assert.True(t, f.IsEmpty())
	assert.Empty(t, f.Applied)
	assert.NotNil(t, f.Applied, "echo is an empty map, never nil")
}

func TestBuild_RejectsInvalid(t *testing.T) {
	_, err := Build(Params{MinLength: Ptr(-1)})
	require.Error(t, err)
	assert.True(t, errors.IsUnparseableQuery(err))
}
