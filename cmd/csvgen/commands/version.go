package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, overwritten by SetVersionInfo.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from main.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// versionLine formats the build metadata on one line.
func versionLine() string {
	return fmt.Sprintf("csvgen %s (commit %s, built %s)", version, commit, date)
}

// Version returns the version command.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionLine())
		},
	}
}
