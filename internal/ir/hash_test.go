package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestContentHashKnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"hello", "hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentHash(tt.value))
			assert.Equal(t, tt.want, ID(tt.value), "ID is the content hash")
		})
	}
}

func TestIDIsLowercaseHex(t *testing.T) {
	id := ID("Racecar")
	assert.Len(t, id, 64, "SHA-256 hex is 64 characters")
	assert.Regexp(t, `^[0-9a-f]{64}$`, id)
}

func TestIDDoesNotNormalise(t *testing.T) {
	// Precomposed é vs e + combining acute accent.
	assert.NotEqual(t, ID("caf\u00e9"), ID("cafe\u0301"))
	assert.NotEqual(t, ID("abc"), ID("abc "))
	assert.NotEqual(t, ID("abc"), ID("ABC"))
}

func TestIDDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "value")
		if ID(s) != ID(s) {
			t.Fatalf("ID(%q) not deterministic", s)
		}
	})
}
