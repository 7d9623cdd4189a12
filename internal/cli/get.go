package cli

import (
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "get <value>",
		Short:         "Look up a stored string by its text",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runGet(opts *RootOptions, value string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	eng, closeFn, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer closeFn()

	rec, err := eng.Get(cmd.Context(), value)
	if err != nil {
		return formatter.EngineError(err)
	}
	return formatter.Success(recordView(rec))
}
