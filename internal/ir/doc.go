// Package ir provides the record types shared by every textvault package.
//
// This package contains type definitions, the content-addressed identity
// function and the canonical encoding of character frequency maps. All other
// internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Record ids are the lowercase hex SHA-256 of the value's UTF-8 bytes,
//     with no domain prefix, so any client can compute them independently
//   - Stored values are never normalised (no NFC, no trimming)
//   - All JSON tags use snake_case
//   - Frequency maps are persisted as canonical JSON and decoded by a
//     dedicated parser that rejects anything but character -> positive count
package ir
