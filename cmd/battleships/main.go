package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/battleships-placement/battleships_placement/internal/app"
	"github.com/battleships-placement/battleships_placement/internal/config"
)

func main() {
	config.LoadDotEnv()
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run returns the process exit code: 0 on a normal exit, 1 when a required
// resource fails to initialize, 2 on a usage error.
func run(args []string, out io.Writer) int {
	cfg, shouldExit, err := config.Parse(args, os.Getenv, out)
	if err != nil {
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(out, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(out, err)
		return 2
	}
	if shouldExit {
		return 0
	}

	if err := app.Run(cfg); err != nil {
		var initErr *app.InitError
		if errors.As(err, &initErr) && initErr.Err != nil {
			fmt.Fprintf(out, "%s: %v\n", initErr, initErr.Err)
		} else {
			fmt.Fprintln(out, err)
		}
		return 1
	}
	return 0
}
