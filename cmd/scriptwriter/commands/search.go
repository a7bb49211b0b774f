// ABOUTME: CLI command to search the example script index
// ABOUTME: Performs semantic search by topic over ingested examples
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/scriptwriter/internal/retrieval"
)

var (
	searchLimit int
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <topic>",
		Short: "Search example scripts",
		Long: `Search the example script index by topic.

Uses semantic similarity over embedded examples, the same retrieval
that grounds script generation.

Examples:
  scriptwriter search "morning routines"
  scriptwriter search --limit 10 "productivity tips"
  scriptwriter search --format json "career advice"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum results to return")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return fmt.Errorf("initializing OpenAI client: %w", err)
	}

	index, cleanup, err := newIndex(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	retriever := retrieval.NewRetriever(client, index, searchLimit)
	examples, err := retriever.Retrieve(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("searching examples: %w", err)
	}

	if len(examples) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No examples found for topic: %s\n", args[0])
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(examples, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tSOURCE\tPREVIEW\n")
	fmt.Fprintf(w, "-----\t------\t-------\n")
	for _, ex := range examples {
		source := ex.Source
		if source == "" {
			source = "(unknown)"
		}
		fmt.Fprintf(w, "%.3f\t%s\t%s\n",
			ex.Similarity,
			truncate(source, 15),
			truncate(ex.Text, 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d example(s)\n", len(examples))
	}
	return nil
}
