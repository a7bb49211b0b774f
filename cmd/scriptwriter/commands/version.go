// ABOUTME: Version command printing the build stamp
// ABOUTME: Values arrive from main via SetVersion (ldflags at release time)
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersion records the build stamp (called from main)
func SetVersion(version, commit, date string) {
	buildVersion, buildCommit, buildDate = version, commit, date
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date for the Scriptwriter CLI.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Scriptwriter %s (commit %s, built %s)\n",
				buildVersion, buildCommit, buildDate)
		},
	}
}
