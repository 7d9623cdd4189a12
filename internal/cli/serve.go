package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/textvault/internal/logger"
	"github.com/roach88/textvault/internal/server"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Host string
	Port int
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the textvault HTTP API.

The database is opened once and shared by every request. The server stops
gracefully on SIGINT or SIGTERM.

Example:
  textvault serve --db ./textvault.db --port 8000
  PORT=9000 textvault serve`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "", "listen host (overrides server.host)")
	cmd.Flags().IntVarP(&opts.Port, "port", "p", 0, "listen port (overrides server.port)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	cfg := opts.Config.Server
	if cmd.Flags().Changed("host") {
		cfg.Host = opts.Host
	}
	if cmd.Flags().Changed("port") {
		if opts.Port < 1 || opts.Port > 65535 {
			return NewExitError(ExitCommandError, "--port must be between 1 and 65535")
		}
		cfg.Port = opts.Port
	}

	log := logger.Component("serve")
	log.Infow("Opening database", logger.FieldDatabase, opts.Config.Database.Path)

	eng, closeFn, err := openEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeFn()

	srv := server.New(eng, cfg, logger.Component("server"))

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return WrapExitError(ExitCommandError, "server error", err)
		}
		return nil
	case <-ctx.Done():
		log.Infow("Shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		return WrapExitError(ExitFailure, "shutdown error", err)
	}
	if err := <-errCh; err != nil {
		return WrapExitError(ExitCommandError, "server error", err)
	}

	log.Infow("Server stopped gracefully")
	return nil
}
