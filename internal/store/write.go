package store

import (
	"context"

	"github.com/roach88/textvault/internal/errors"
	"github.com/roach88/textvault/internal/ir"
)

// insertSQL inserts a record and assigns the next seq in one statement.
// The WHERE true is required: SQLite cannot otherwise tell the ON CONFLICT
// clause apart from a join constraint after INSERT ... SELECT.
const insertSQL = `
	INSERT INTO strings
	(id, value, length, is_palindrome, unique_characters, word_count, sha256_hash, char_freq, created_at, seq)
	SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(MAX(seq), 0) + 1 FROM strings WHERE true
	ON CONFLICT(id) DO NOTHING
`

// InsertIfAbsent stores rec unless a record with the same id exists.
// Returns inserted=false, with a nil error, when the id is already present;
// the existing row is left untouched.
func (s *Store) InsertIfAbsent(ctx context.Context, rec ir.StringRecord) (inserted bool, err error) {
	freqJSON, err := ir.MarshalFrequencyMap(rec.Properties.CharacterFrequencyMap)
	if err != nil {
		return false, errors.StoreFailure(err, "insert string: encode frequency map")
	}

	result, err := s.db.ExecContext(ctx, insertSQL,
		rec.ID,
		rec.Value,
		rec.Properties.Length,
		rec.Properties.IsPalindrome,
		rec.Properties.UniqueCharacters,
		rec.Properties.WordCount,
		rec.Properties.SHA256Hash,
		string(freqJSON),
		rec.CreatedAt,
	)
	if err != nil {
		return false, errors.StoreFailure(err, "insert string")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.StoreFailure(err, "insert string: rows affected")
	}

	return n > 0, nil
}

// Delete removes the record with the given id.
// Returns deleted=false when no such record exists.
func (s *Store) Delete(ctx context.Context, id string) (deleted bool, err error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM strings WHERE id = ?`, id)
	if err != nil {
		return false, errors.StoreFailure(err, "delete string")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.StoreFailure(err, "delete string: rows affected")
	}

	return n > 0, nil
}
