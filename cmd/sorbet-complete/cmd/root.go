// Package cmd provides the CLI commands for sorbet-complete.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udn/sorbet/internal/errors"
	"github.com/udn/sorbet/internal/logging"
	"github.com/udn/sorbet/pkg/version"
)

// Debug logging flag, shared by all commands.
var debugMode bool

// NewRootCmd creates the root command for the sorbet-complete CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sorbet-complete",
		Short: "Run completion queries against a symbol-table fixture",
		Long: `sorbet-complete exercises the "find similar identifiers" completion core
offline: it loads a resolved symbol table from a YAML fixture, runs one
completion query against it, and prints the ranked items the editor
would see.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("sorbet-complete version {{.Version}}\n")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.AddCommand(newCompleteCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the logger for one invocation, honoring --debug.
func newLogger() *slog.Logger {
	cfg := logging.DefaultConfig()
	if debugMode {
		cfg = logging.DebugConfig()
	}
	return logging.Setup(cfg)
}

// Execute runs the root command.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatForCLI(err))
		return err
	}
	return nil
}
