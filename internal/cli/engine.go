package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/textvault/internal/engine"
	"github.com/roach88/textvault/internal/logger"
	"github.com/roach88/textvault/internal/store"
)

// openEngine opens the configured database and returns an engine over it.
// The caller must call the returned close function.
func openEngine(opts *RootOptions) (*engine.Engine, func(), error) {
	path := opts.Config.Database.Path
	st, err := store.Open(path, store.WithLogger(logger.Component("store")))
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	closeFn := func() {
		if err := st.Close(); err != nil {
			logger.Logger.Errorw("Error closing database", logger.FieldDatabase, path, logger.FieldError, err)
		}
	}
	return engine.New(st), closeFn, nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}
