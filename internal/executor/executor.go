// internal/executor/executor.go
package executor

import (
	"context"
	"fmt"
)

type Executor interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExitError reports that a command ran to completion but exited with a
// non-zero status. It is distinct from spawn failures so callers can
// mirror the child's exact exit code instead of treating it as an
// internal error.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q failed with exit code: %d", e.Command, e.Code)
}
