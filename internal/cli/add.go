package cli

import (
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <value>",
		Short: "Store a string and print its computed properties",
		Long: `Store a string and print its computed properties.

The value is stored exactly as given. Adding the same value twice fails with
CONFLICT and leaves the original record untouched.

Example:
  textvault add "racecar"
  textvault add "hello world" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runAdd(opts *RootOptions, value string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	eng, closeFn, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer closeFn()

	rec, err := eng.Create(cmd.Context(), value)
	if err != nil {
		return formatter.EngineError(err)
	}

	formatter.VerboseLog("Stored %s", rec.ID)
	return formatter.Success(recordView(rec))
}
