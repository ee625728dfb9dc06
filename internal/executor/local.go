// internal/executor/local.go
package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rust-swifties/tailor/internal/ui"
)

type LocalExecutor struct{}

func NewLocalExecutor() *LocalExecutor {
	return &LocalExecutor{}
}

// Run spawns name with args, wiring the child to the parent's standard
// streams, and blocks until it exits. A spawn failure (command not found,
// not executable) is returned as a wrapped error; a non-zero exit is
// logged and returned as *ExitError.
func (l *LocalExecutor) Run(ctx context.Context, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	err := c.Run()
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		exitErr := &ExitError{Command: name, Code: ee.ExitCode()}
		ui.Error(exitErr.Error())
		return exitErr
	}
	return fmt.Errorf("failed to execute command %q: %w", name, err)
}
