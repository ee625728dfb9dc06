// internal/ui/ui.go
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

// Diagnostics go to stderr: stdout belongs to the child process being run.
var out io.Writer = os.Stderr

// SetOutput redirects diagnostic output, mainly for tests.
func SetOutput(w io.Writer) {
	out = w
}

func Warn(msg string) {
	fmt.Fprintf(out, "%s %s\n", yellow("warning:"), msg)
}

func Error(msg string) {
	fmt.Fprintf(out, "%s %s\n", red("error:"), msg)
}

func Info(msg string) {
	fmt.Fprintf(out, "%s\n", cyan(msg))
}
