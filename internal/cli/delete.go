package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/textvault/internal/ir"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "delete <value>",
		Short:         "Delete a stored string by its text",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runDelete(opts *RootOptions, value string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	eng, closeFn, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := eng.Delete(cmd.Context(), value); err != nil {
		return formatter.EngineError(err)
	}

	id := ir.ID(value)
	if opts.Format == "json" {
		return formatter.Success(map[string]string{"deleted": id})
	}
	return formatter.Success("Deleted " + id)
}
