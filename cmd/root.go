package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"timesheeter-install/internal/logger"
)

// debug mirrors the --debug persistent flag.
var debug bool

// rootCmd anchors the CLI. The install and uninstall subcommands hang off
// it and inherit its flags.
var rootCmd = &cobra.Command{
	Use:   "timesheeter-install",
	Short: "Timesheeter installer",
	Long:  "Installs a launcher for the Timesheeter application and, optionally, wires it to a Python virtual environment.",

	// Runs before any subcommand, so the logger is configured exactly once.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute wires the global flags and dispatches to the requested
// subcommand. A failed command has already logged its error in color; all
// that is left here is the non-zero exit status.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
