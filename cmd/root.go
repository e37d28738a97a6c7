// Package cmd implements the command-line interface for floatingclock.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"floatingclock/internal/app"
	"floatingclock/internal/version"
)

// runApp is replaced in tests
var runApp = app.Run

// RootCmd is the root command for the floatingclock application.
var RootCmd = &cobra.Command{
	Use:          "floatingclock",
	Short:        "floatingclock - A borderless desktop clock",
	Version:      version.GetVersion(),
	Args:         cobra.NoArgs,
	RunE:         Execute,
	SilenceUsage: true, // Don't show usage on runtime errors
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
	},
}

func init() {
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().String("config", "", "path to config file (default <UserConfigDir>/FloatingClock/config.json)")
	RootCmd.PersistentFlags().String("log-dir", "", "directory for the log file")

	RootCmd.AddCommand(versionCmd)
}

// NewOptionsFromFlags builds app options from parsed command flags
func NewOptionsFromFlags(cmd *cobra.Command) app.Options {
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")
	logDir, _ := cmd.Flags().GetString("log-dir")

	return app.Options{
		ConfigPath: configPath,
		LogDir:     logDir,
		Verbose:    verbose,
	}
}

// Execute runs the overlay until it is closed
func Execute(cmd *cobra.Command, _ []string) error {
	return runApp(NewOptionsFromFlags(cmd))
}
