// cmd/tailor/root.go
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rust-swifties/tailor/internal/executor"
	"github.com/rust-swifties/tailor/internal/probe"
	"github.com/rust-swifties/tailor/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor <file> [command...]",
	Short: "Tail a file or run a fallback command",
	Long: `Tailor attempts to tail a file. If the file doesn't exist or can't be
read, it runs the specified fallback command instead, passing the file
path as the final argument.

Examples:
  tailor file.txt touch                       # tail file.txt, or touch file.txt
  tailor file.txt chmod 755                   # tail file.txt, or chmod 755 file.txt
  tailor config.json cp config.template.json  # tail config.json, or cp config.template.json config.json`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), executor.NewLocalExecutor(), args[0], args[1:])
	},
}

func init() {
	// Fallback command tokens may begin with dashes (e.g. "rm -f");
	// stop flag parsing at the first positional.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print tailor version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tailor", version)
	},
}

func run(ctx context.Context, exec executor.Executor, file string, fallback []string) error {
	ok, err := probe.CanTail(file)
	if err != nil {
		return err
	}

	if ok {
		return exec.Run(ctx, "tail", file)
	}

	if len(fallback) == 0 {
		return fmt.Errorf("file %q is not readable and no fallback command specified", file)
	}

	args := append(append([]string{}, fallback[1:]...), file)
	ui.Info(fmt.Sprintf("file %s cannot be tailed, executing: %s %s", file, fallback[0], strings.Join(args, " ")))
	return exec.Run(ctx, fallback[0], args...)
}
