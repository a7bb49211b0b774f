// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines the scriptwriter command tree and output options
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███████╗ ██████╗██████╗ ██╗██████╗ ████████╗██╗    ██╗██████╗ ██╗████████╗███████╗██████╗
██╔════╝██╔════╝██╔══██╗██║██╔══██╗╚══██╔══╝██║    ██║██╔══██╗██║╚══██╔══╝██╔════╝██╔══██╗
███████╗██║     ██████╔╝██║██████╔╝   ██║   ██║ █╗ ██║██████╔╝██║   ██║   █████╗  ██████╔╝
╚════██║██║     ██╔══██╗██║██╔═══╝    ██║   ██║███╗██║██╔══██╗██║   ██║   ██╔══╝  ██╔══██╗
███████║╚██████╗██║  ██║██║██║        ██║   ╚███╔███╔╝██║  ██║██║   ██║   ███████╗██║  ██║
╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝╚═╝        ╚═╝    ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝   ╚═╝   ╚══════╝╚═╝  ╚═╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scriptwriter",
		Short: "Generate scored short-form video scripts in a creator's voice",
		Long: banner + `
Scriptwriter generates short-form video scripts (TikTok, Reels, Shorts)
in a creator's learned voice. Each request drafts several candidates,
scores them for quality, personalization, and viral potential, then
polishes the winner without ever letting it regress.

Personas are learned from a creator's story and example scripts.
Example scripts live in a vector index and ground every generation.`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewPersonaCmd())
	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
