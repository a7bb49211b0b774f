// ABOUTME: Sync commands for Charm cloud synchronization
// ABOUTME: Provides status, sync, wipe, and keys management
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/scriptwriter/internal/charm"
)

// NewSyncCmd creates the sync command group
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage Charm cloud synchronization",
		Long: `Manage synchronization with Charm cloud.

The example index (when not using Pinecone) is stored in Charm KV and
syncs automatically across devices linked to the same Charm account.`,
	}

	cmd.AddCommand(newSyncStatusCmd())
	cmd.AddCommand(newSyncNowCmd())
	cmd.AddCommand(newSyncWipeCmd())
	cmd.AddCommand(newSyncKeysCmd())
	cmd.AddCommand(newSyncUnlinkCmd())

	return cmd
}

func openCharm() (*charm.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	client, err := charm.NewClient(&charm.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Charm: %w", err)
	}
	return client, nil
}

func newSyncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status and connection info",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			id, err := client.ID()
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Status: Not connected")
				fmt.Fprintln(cmd.OutOrStdout(), "Run 'scriptwriter sync keys' to check your SSH keys")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Status: Connected")
			fmt.Fprintf(cmd.OutOrStdout(), "User ID: %s\n", id)
			return nil
		},
	}
}

func newSyncNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Force immediate sync with Charm cloud",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			fmt.Fprintln(cmd.OutOrStdout(), "Syncing...")
			if err := client.Sync(); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Sync complete")
			return nil
		},
	}
}

func newSyncWipeCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Wipe all local data (nuclear option)",
		Long: `Completely wipe all local Charm data.

WARNING: This deletes all locally cached data. Your cloud data
remains intact and will be re-synced on next access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				fmt.Fprintln(cmd.OutOrStdout(), "This will wipe ALL local data!")
				fmt.Fprintln(cmd.OutOrStdout(), "Run with --confirm to proceed")
				return nil
			}

			client, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err := client.Reset(); err != nil {
				return fmt.Errorf("failed to wipe data: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Local data wiped successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the wipe operation")

	return cmd
}

func newSyncKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List authorized SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			keys, err := client.GetAuthorizedKeys()
			if err != nil {
				return fmt.Errorf("failed to get authorized keys: %w", err)
			}

			if keys == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No authorized keys found")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Authorized SSH keys:")
			fmt.Fprintln(cmd.OutOrStdout(), keys)
			return nil
		},
	}
}

func newSyncUnlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <key>",
		Short: "Remove an authorized SSH key from the account",
		Long: `Remove an authorized SSH key from the Charm account.

The key is the public key string as shown by 'scriptwriter sync keys'.
The device holding that key loses access to the synced data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := openCharm()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err := client.UnlinkKey(args[0]); err != nil {
				return fmt.Errorf("failed to unlink key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Key unlinked")
			return nil
		},
	}
}
