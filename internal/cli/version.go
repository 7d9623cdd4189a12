package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/textvault/internal/ir"
)

type versionInfo struct {
	Version       string `json:"version"`
	SchemaVersion string `json:"schema_version"`
	HashAlgorithm string `json:"hash_algorithm"`
}

func (v versionInfo) String() string {
	return fmt.Sprintf("textvault %s (schema %s, ids: %s)", v.Version, v.SchemaVersion, v.HashAlgorithm)
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print version information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newFormatter(rootOpts, cmd).Success(versionInfo{
				Version:       ir.Version,
				SchemaVersion: ir.SchemaVersion,
				HashAlgorithm: ir.HashAlgorithm,
			})
		},
	}
}
