package ir

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashAlgorithm names the digest behind record identity.
const HashAlgorithm = "sha256"

// ContentHash returns the lowercase hex SHA-256 of value's UTF-8 bytes.
//
// No domain separation and no normalisation are applied: clients address a
// record by hashing the original text themselves, so the digest must be the
// plain SHA-256 any tool would produce.
func ContentHash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// ID computes the record identifier for value.
// The id is the content hash; the store-time and lookup-time paths both call
// this function so they can never disagree.
func ID(value string) string {
	return ContentHash(value)
}
