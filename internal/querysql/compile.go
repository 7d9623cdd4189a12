// Package querysql compiles structured filters to parameterised SQLite.
package querysql

import (
	"fmt"
	"strings"

	"github.com/roach88/textvault/internal/queryir"
)

// SQLCompiler compiles a queryir.Filter to a SELECT over one table.
//
// CRITICAL: every query ends in ORDER BY seq ASC, id COLLATE BINARY ASC so
// results come back in insertion order with a deterministic tiebreaker.
// CRITICAL: values are always bound as ? parameters, never interpolated.
type SQLCompiler struct {
	Table   string
	Columns []string
}

// NewSQLCompiler creates a compiler selecting columns from table.
func NewSQLCompiler(table string, columns []string) *SQLCompiler {
	return &SQLCompiler{Table: table, Columns: columns}
}

// Compile converts f to a SELECT statement and its parameters.
func (c *SQLCompiler) Compile(f queryir.Filter) (string, []any, error) {
	where, params, err := c.CompileWhere(f.Where)
	if err != nil {
		return "", nil, err
	}

	selectClause := "*"
	if len(c.Columns) > 0 {
		selectClause = strings.Join(c.Columns, ", ")
	}

	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s",
		selectClause,
		c.Table,
		where,
		stableOrderKey())

	return sql, params, nil
}

// CompileWhere compiles a predicate to a WHERE fragment and its parameters.
func (c *SQLCompiler) CompileWhere(p queryir.Predicate) (string, []any, error) {
	return compilePredicate(p)
}

// stableOrderKey returns the ORDER BY clause shared by every scan.
// COLLATE BINARY keeps id ordering independent of SQLite collation settings.
func stableOrderKey() string {
	return "seq ASC, id COLLATE BINARY ASC"
}

// compilePredicate compiles one predicate.
// CRITICAL: Values NEVER interpolated - always use ? placeholders.
func compilePredicate(p queryir.Predicate) (string, []any, error) {
	if p == nil {
		return "1 = 1", nil, nil
	}

	switch pred := p.(type) {
	case queryir.PalindromeEquals:
		return "is_palindrome = ?", []any{pred.Value}, nil
	case queryir.LengthAtLeast:
		return "length >= ?", []any{int64(pred.Min)}, nil
	case queryir.LengthAtMost:
		return "length <= ?", []any{int64(pred.Max)}, nil
	case queryir.WordCountEquals:
		return "word_count = ?", []any{int64(pred.Count)}, nil
	case queryir.ContainsCharacter:
		// instr is a case-sensitive literal search; LIKE would fold ASCII
		// case and treat % and _ as wildcards.
		return "instr(value, ?) > 0", []any{pred.Char}, nil
	case queryir.And:
		return compileAnd(pred)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

// compileAnd compiles a conjunction. An empty And is vacuously true.
func compileAnd(and queryir.And) (string, []any, error) {
	if len(and.Predicates) == 0 {
		return "1 = 1", nil, nil
	}

	var sqlParts []string
	var allParams []any

	for _, pred := range and.Predicates {
		sql, params, err := compilePredicate(pred)
		if err != nil {
			return "", nil, err
		}
		sqlParts = append(sqlParts, sql)
		allParams = append(allParams, params...)
	}

	return strings.Join(sqlParts, " AND "), allParams, nil
}
