package store

import (
	"github.com/roach88/textvault/internal/errors"
	"github.com/roach88/textvault/internal/ir"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one record in recordColumns order.
// sql.ErrNoRows is returned unwrapped so callers can test for it.
func scanRecord(row rowScanner) (ir.StringRecord, error) {
	var rec ir.StringRecord
	var freqJSON string

	err := row.Scan(
		&rec.ID,
		&rec.Value,
		&rec.Properties.Length,
		&rec.Properties.IsPalindrome,
		&rec.Properties.UniqueCharacters,
		&rec.Properties.WordCount,
		&rec.Properties.SHA256Hash,
		&freqJSON,
		&rec.CreatedAt,
	)
	if err != nil {
		return ir.StringRecord{}, err
	}

	freq, err := ir.UnmarshalFrequencyMap([]byte(freqJSON))
	if err != nil {
		return ir.StringRecord{}, errors.Wrapf(err, "record %s: char_freq", rec.ID)
	}
	rec.Properties.CharacterFrequencyMap = freq

	return rec, nil
}
