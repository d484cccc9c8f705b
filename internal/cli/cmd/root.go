// Package cmd provides Cobra CLI commands for splitter.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/cli"
	"github.com/bnema/splitter/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "splitter",
		Short: "Resizable split panes driven by mouse and keyboard",
		Long: `Splitter - resizable multi-pane splits for the terminal.

Panes sit side by side (row) or stacked (column), separated by handles.
Dragging a handle moves space only between the two panes it separates;
every other pane keeps its size. Splits nest, and each one resizes
independently of its parent.

Use 'splitter demo' to open the interactive demo, 'splitter drag' to
replay a drag from the command line, or 'splitter config' to manage
the configuration file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if skipsAppInit(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// skipsAppInit reports whether cmd runs without loading the config. Config
// commands must work even when the file is broken.
func skipsAppInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "gen-docs", "version":
		return true
	}
	return cmd.HasParent() && cmd.Parent() == configCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
