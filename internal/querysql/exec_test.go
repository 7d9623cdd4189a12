package querysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/textvault/internal/ir"
	"github.com/roach88/textvault/internal/props"
	"github.com/roach88/textvault/internal/queryir"
	"github.com/roach88/textvault/internal/querysql"
	"github.com/roach88/textvault/internal/store"
	"github.com/roach88/textvault/internal/testutil"
)

// openSchemaDB returns an in-memory SQLite store with the production schema.
func openSchemaDB(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// TestCompile_ExecutesOnSQLite runs every compiled predicate shape against
// the real schema, so a statement SQLite cannot parse fails here.
func TestCompile_ExecutesOnSQLite(t *testing.T) {
	st := openSchemaDB(t)
	ctx := context.Background()
	clock := testutil.NewDeterministicClock()

	for _, value := range []string{"abc", "racecar", "hello world"} {
		rec := ir.StringRecord{
			ID:         ir.ID(value),
			Value:      value,
			Properties: props.Compute(value),
			CreatedAt:  ir.FormatTimestamp(clock.Now()),
		}
		inserted, err := st.InsertIfAbsent(ctx, rec)
		require.NoError(t, err)
		require.True(t, inserted)
	}

	compiler := querysql.NewSQLCompiler(store.Table, []string{"value"})

	testCases := []struct {
		name   string
		filter queryir.Filter
		want   []string
	}{
		{"empty_and", queryir.Filter{Where: queryir.And{}}, []string{"abc", "racecar", "hello world"}},
		{"palindrome", queryir.Filter{Where: queryir.And{Predicates: []queryir.Predicate{
			queryir.PalindromeEquals{Value: true},
		}}}, []string{"racecar"}},
		{"length_at_least", queryir.Filter{Where: queryir.And{Predicates: []queryir.Predicate{
			queryir.LengthAtLeast{Min: 7},
		}}}, []string{"racecar", "hello world"}},
		{"length_at_most", queryir.Filter{Where: queryir.And{Predicates: []queryir.Predicate{
			queryir.LengthAtMost{Max: 3},
		}}}, []string{"abc"}},
		{"word_count", queryir.Filter{Where: queryir.And{Predicates: []queryir.Predicate{
			queryir.WordCountEquals{Count: 2},
		}}}, []string{"hello world"}},
		{"contains_character", queryir.Filter{Where: queryir.And{Predicates: []queryir.Predicate{
			queryir.ContainsCharacter{Char: "c"},
		}}}, []string{"abc", "racecar"}},
		{"nested_and", queryir.Filter{Where: queryir.And{Predicates: []queryir.Predicate{
			queryir.And{Predicates: []queryir.Predicate{queryir.ContainsCharacter{Char: "a"}}},
			queryir.LengthAtMost{Max: 3},
		}}}, []string{"abc"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sql, params, err := compiler.Compile(tc.filter)
			require.NoError(t, err)

			rows, err := st.DB().QueryContext(ctx, sql, params...)
			require.NoError(t, err, sql)
			defer rows.Close()

			got := []string{}
			for rows.Next() {
				var v string
				require.NoError(t, rows.Scan(&v))
				got = append(got, v)
			}
			require.NoError(t, rows.Err())
			assert.Equal(t, tc.want, got)
		})
	}
}
