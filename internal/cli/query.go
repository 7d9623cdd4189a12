package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/textvault/internal/nlquery"
)

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <phrase>...",
		Short: "Filter stored strings with an English phrase",
		Long: `Filter stored strings with an English phrase.

Only a fixed set of phrases is recognised:
  "single word palindromic"    word_count=1, is_palindrome=true
  "longer than N"              min_length=N+1
  "palindromic"                is_palindrome=true
  "contains the letter X"      contains_character=X
  "first vowel"                contains_character=a

A phrase matching none of them fails with UNPARSEABLE_QUERY.

Example:
  textvault query all single word palindromic strings
  textvault query "strings longer than 10 characters"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, strings.Join(args, " "), cmd)
		},
	}
	return cmd
}

func runQuery(opts *RootOptions, query string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	if opts.Verbose {
		if tr, err := nlquery.Interpret(query); err == nil {
			formatter.VerboseLog("Matched rules: %s", strings.Join(tr.Matched, ", "))
		}
	}

	eng, closeFn, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := eng.FilterNatural(cmd.Context(), query)
	if err != nil {
		return formatter.EngineError(err)
	}

	return formatter.Success(listView{
		Data:           res.Records,
		Count:          len(res.Records),
		FiltersApplied: res.Parsed,
		Original:       res.Original,
	})
}
