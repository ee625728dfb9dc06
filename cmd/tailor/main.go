// cmd/tailor/main.go
package main

import (
	"errors"
	"os"

	"github.com/rust-swifties/tailor/internal/executor"
	"github.com/rust-swifties/tailor/internal/ui"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// A child that ran but failed propagates its exact exit code,
		// as if the shell had invoked it directly.
		var exitErr *executor.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		ui.Error(err.Error())
		os.Exit(1)
	}
}
