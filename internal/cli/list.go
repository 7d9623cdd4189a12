package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/textvault/internal/queryir"
)

// ListOptions holds flags for the list command.
// Values stay strings so parsing and validation match the HTTP query string.
type ListOptions struct {
	*RootOptions
	IsPalindrome      string
	MinLength         string
	MaxLength         string
	WordCount         string
	ContainsCharacter string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored strings, optionally filtered",
		Long: `List stored strings in insertion order.

All supplied filters must hold (logical AND). Without filters every record
is listed.

Example:
  textvault list --is-palindrome true --word-count 1
  textvault list --min-length 3 --contains-character a`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.IsPalindrome, "is-palindrome", "", "only palindromes (true) or non-palindromes (false)")
	cmd.Flags().StringVar(&opts.MinLength, "min-length", "", "minimum length in characters")
	cmd.Flags().StringVar(&opts.MaxLength, "max-length", "", "maximum length in characters")
	cmd.Flags().StringVar(&opts.WordCount, "word-count", "", "exact number of words")
	cmd.Flags().StringVar(&opts.ContainsCharacter, "contains-character", "", "single character the value must contain (case-sensitive)")

	return cmd
}

// filterValues collects the flags the user actually set.
func (o *ListOptions) filterValues(cmd *cobra.Command) map[string]string {
	flags := []struct {
		flag  string
		param string
		value string
	}{
		{"is-palindrome", queryir.ParamIsPalindrome, o.IsPalindrome},
		{"min-length", queryir.ParamMinLength, o.MinLength},
		{"max-length", queryir.ParamMaxLength, o.MaxLength},
		{"word-count", queryir.ParamWordCount, o.WordCount},
		{"contains-character", queryir.ParamContainsCharacter, o.ContainsCharacter},
	}

	values := make(map[string]string)
	for _, f := range flags {
		if cmd.Flags().Changed(f.flag) {
			values[f.param] = f.value
		}
	}
	return values
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	eng, closeFn, err := openEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := eng.ListValues(cmd.Context(), opts.filterValues(cmd))
	if err != nil {
		return formatter.EngineError(err)
	}

	return formatter.Success(listView{
		Data:           res.Records,
		Count:          len(res.Records),
		FiltersApplied: res.Applied,
	})
}
