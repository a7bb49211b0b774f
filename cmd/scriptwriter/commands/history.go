// ABOUTME: CLI command to browse previously generated scripts
// ABOUTME: Lists, shows, and deletes records with their frozen scores
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	historyPersona string
	historyLimit   int
)

// NewHistoryCmd creates the history command group
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse generated scripts",
		Long: `Browse previously generated scripts.

Scores shown are the ones computed at generation time. They are never
recomputed, so history is stable across scoring changes.

Examples:
  scriptwriter history
  scriptwriter history --persona a1b2c3d4 --limit 20
  scriptwriter history show 3f2e1d0c
  scriptwriter history delete 3f2e1d0c`,
		RunE: runHistoryList,
	}

	cmd.Flags().StringVar(&historyPersona, "persona", "", "Filter by persona ID")
	cmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum records to return")

	showCmd := &cobra.Command{
		Use:   "show <script-id>",
		Short: "Show a stored script and its scores",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <script-id>",
		Short: "Delete a stored script",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryDelete,
	}

	cmd.AddCommand(showCmd)
	cmd.AddCommand(deleteCmd)

	return cmd
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(historyLimit, "limit"); err != nil {
		return err
	}

	store, cleanup, err := openHistory()
	if err != nil {
		return err
	}
	defer cleanup()

	records, err := store.List(cmd.Context(), historyPersona, historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(records) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No scripts found\n")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTOPIC\tDURATION\tQUALITY\tVIRAL\tCREATED\n")
	fmt.Fprintf(w, "--\t-----\t--------\t-------\t-----\t-------\n")
	for _, record := range records {
		fmt.Fprintf(w, "%s\t%s\t%ds\t%.1f\t%.1f (%s)\t%s\n",
			truncate(record.ID, 12),
			truncate(record.Request.Topic, 30),
			record.Request.Duration,
			record.Scores.Quality,
			record.Scores.Viral,
			record.Scores.ViralGrade,
			formatTime(record.CreatedAt))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d record(s)\n", len(records))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openHistory()
	if err != nil {
		return err
	}
	defer cleanup()

	record, err := store.GetByID(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading record: %w", err)
	}
	if record == nil {
		return fmt.Errorf("script not found: %s", args[0])
	}

	return printRecord(cmd, record)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openHistory()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted script %s\n", args[0])
	}
	return nil
}
