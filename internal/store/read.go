package store

import (
	"context"
	"database/sql"

	"github.com/roach88/textvault/internal/errors"
	"github.com/roach88/textvault/internal/ir"
	"github.com/roach88/textvault/internal/queryir"
	"github.com/roach88/textvault/internal/querysql"
)

// recordColumns lists the columns scanRecord expects, in order.
var recordColumns = []string{
	"id",
	"value",
	"length",
	"is_palindrome",
	"unique_characters",
	"word_count",
	"sha256_hash",
	"char_freq",
	"created_at",
}

var compiler = querysql.NewSQLCompiler(Table, recordColumns)

// Get retrieves a single record by id.
// Returns found=false, with a nil error, when no record has that id.
func (s *Store) Get(ctx context.Context, id string) (rec ir.StringRecord, found bool, err error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, value, length, is_palindrome, unique_characters, word_count, sha256_hash, char_freq, created_at
		FROM strings
		WHERE id = ?
	`, id)

	rec, err = scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.StringRecord{}, false, nil
	}
	if err != nil {
		return ir.StringRecord{}, false, errors.StoreFailure(err, "get string")
	}

	return rec, true, nil
}

// Scan returns every record satisfying all predicates of f.
// Results are ordered deterministically: ORDER BY seq ASC, id COLLATE BINARY ASC.
//
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) Scan(ctx context.Context, f queryir.Filter) ([]ir.StringRecord, error) {
	query, args, err := compiler.Compile(f)
	if err != nil {
		return nil, errors.Wrap(err, "scan strings")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.StoreFailure(err, "scan strings")
	}
	defer rows.Close()

	records := []ir.StringRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, errors.StoreFailure(err, "scan strings")
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.StoreFailure(err, "iterate strings")
	}

	return records, nil
}
