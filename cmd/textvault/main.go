package main

import (
	"fmt"
	"os"

	"github.com/roach88/textvault/internal/cli"
	"github.com/roach88/textvault/internal/errors"
	"github.com/roach88/textvault/internal/logger"
)

func main() {
	err := cli.NewRootCommand().Execute()
	logger.Sync()

	if err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Reported {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
