// Package cli provides the command-line interface for ltime.
package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/ltime/internal/cli/commands"
	"github.com/ccollicutt/ltime/pkg/filter"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitIO          = 1
	ExitConfigError = 2
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors stops Cobra from printing this itself.
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitCode(err)
	}
	return ExitOK
}

// ExitCode maps an error from a command to the process exit code.
// Stream failures are runtime problems; everything else (flags, config,
// timezone, recognizer pattern) is a configuration problem.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, filter.ErrIO):
		return ExitIO
	default:
		return ExitConfigError
	}
}

// NewRootCommand creates the root cobra command. Run without a subcommand it
// filters its input.
func NewRootCommand() *cobra.Command {
	g := &commands.GlobalOptions{}

	rootCmd := commands.NewFilterCommand(g)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	commands.BindGlobalFlags(rootCmd, g)

	rootCmd.AddCommand(commands.NewValidateCommand(g))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
