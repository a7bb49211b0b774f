// ABOUTME: CLI command to add example scripts to the retrieval index
// ABOUTME: Handles text input from args, files, or stdin
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/scriptwriter/internal/retrieval"
)

var (
	ingestFile   string
	ingestSource string
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [text]",
		Short: "Add an example script to the index",
		Long: `Add an example script to the retrieval index.

Ingested examples are embedded and stored in the vector index. Future
generations retrieve the most similar ones as few-shot context.

Examples:
  scriptwriter ingest "HOOK: Stop scrolling..."
  scriptwriter ingest --file viral_script.txt --source tiktok
  cat script.txt | scriptwriter ingest`,
		Args: cobra.MaximumNArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&ingestFile, "file", "", "Read example from file")
	cmd.Flags().StringVar(&ingestSource, "source", "", "Source label (e.g. tiktok, reels)")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	text, err := readTextInput(cmd, args, ingestFile)
	if err != nil {
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

	id, err := retrieval.NewIngestor(client, index).Ingest(cmd.Context(), text, ingestSource)
	if err != nil {
		return fmt.Errorf("ingesting example: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added example %s\n", id)
	}
	return nil
}
