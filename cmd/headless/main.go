// Headless is a terminal playground for the headless interaction engines.
//
// It runs an interactive demo of the pagination, slider and tabs engines and
// offers commands that compute a single view from flags and print it, which
// is handy for checking edge cases without a terminal UI.
//
// Usage:
//
//	headless [command] [flags]
//
// Running without arguments launches the interactive demo.
// See 'headless --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/headless/internal/logging"
	"github.com/muurk/headless/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "headless",
	Short: "Headless UI engines playground",
	Long: `A terminal playground for the headless pagination, slider and tabs engines.

The engines hold interaction state and produce views; this tool renders
those views in the terminal and feeds keyboard and mouse input back.

If no command is specified, the interactive demo will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the demo when no subcommand provided
		return runDemo(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("headless %s\n", version.Full())
	},
}
