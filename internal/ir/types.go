package ir

import "time"

// TimestampLayout is the fixed created_at format: UTC, microsecond
// precision, trailing Z.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// StringRecord is a stored string together with its derived properties.
// Records are immutable once created.
type StringRecord struct {
	ID         string     `json:"id"`         // Content-addressed hash of Value
	Value      string     `json:"value"`      // Exactly as submitted
	Properties Properties `json:"properties"` // Pure function of Value
	CreatedAt  string     `json:"created_at"` // First successful insertion, TimestampLayout
}

// Properties is the bundle computed from a record's value.
type Properties struct {
	Length                int          `json:"length"`            // Code points
	IsPalindrome          bool         `json:"is_palindrome"`     // Case-folded comparison
	UniqueCharacters      int          `json:"unique_characters"` // Distinct code points
	WordCount             int          `json:"word_count"`        // Whitespace-delimited tokens
	SHA256Hash            string       `json:"sha256_hash"`
	CharacterFrequencyMap FrequencyMap `json:"character_frequency_map"`
}

// FrequencyMap maps each distinct character (one code point, as a string)
// to its number of occurrences.
type FrequencyMap map[string]int

// FormatTimestamp renders t in TimestampLayout after converting to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a created_at value written by FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
