package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// MarshalFrequencyMap produces the canonical JSON text persisted for a
// frequency map.
//
// Differences from json.Marshal:
//  1. Keys sorted by UTF-16 code units (RFC 8785), not UTF-8 bytes
//  2. No HTML escaping (< > & are written literally)
//  3. U+2028 and U+2029 are written literally
//  4. Keys are NOT normalised: distinct code points stay distinct
//
// Every key must be exactly one character and every count positive.
func MarshalFrequencyMap(m FrequencyMap) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if err := checkKey(k); err != nil {
			return nil, fmt.Errorf("marshal frequency map: %w", err)
		}
		count := m[k]
		if count <= 0 {
			return nil, fmt.Errorf("marshal frequency map: count for %q must be positive, got %d", k, count)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := marshalKey(k)
		if err != nil {
			return nil, fmt.Errorf("marshal frequency map: key %q: %w", k, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalFrequencyMap decodes text written by MarshalFrequencyMap.
//
// The decoder accepts exactly one JSON object whose keys are single
// characters and whose values are positive integers. Anything else (arrays,
// floats, nested values, trailing data, multi-character keys) is an error.
// It never evaluates its input.
func UnmarshalFrequencyMap(data []byte) (FrequencyMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("unmarshal frequency map: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("unmarshal frequency map: expected object, got null")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unmarshal frequency map: trailing data after object")
	}

	m := make(FrequencyMap, len(raw))
	for k, num := range raw {
		if err := checkKey(k); err != nil {
			return nil, fmt.Errorf("unmarshal frequency map: %w", err)
		}
		// Only a bare integer literal parses; strings, floats, objects and
		// null are rejected here.
		n, err := strconv.Atoi(string(bytes.TrimSpace(num)))
		if err != nil {
			return nil, fmt.Errorf("unmarshal frequency map: count for %q: %w", k, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("unmarshal frequency map: count for %q must be positive, got %d", k, n)
		}
		m[k] = n
	}
	return m, nil
}

// checkKey enforces the one-character key invariant.
func checkKey(k string) error {
	if utf8.RuneCountInString(k) != 1 {
		return fmt.Errorf("key %q is not a single character", k)
	}
	return nil
}

// marshalKey encodes a single-character key as a JSON string with HTML
// escaping disabled. Go's encoder still escapes U+2028/U+2029; RFC 8785 wants
// them literal. A key is one character, so an escape sequence in the output
// can only stand for the key itself.
func marshalKey(k string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(k); err != nil {
		return nil, err
	}
	out := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	switch string(out) {
	case `"\u2028"`:
		return []byte("\"\u2028\""), nil
	case `"\u2029"`:
		return []byte("\"\u2029\""), nil
	}
	return out, nil
}

// compareUTF16 orders strings by UTF-16 code units as RFC 8785 requires.
// Go's string comparison uses UTF-8 bytes, which differs above U+FFFF.
func compareUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))
	return slices.Compare(a16, b16)
}
