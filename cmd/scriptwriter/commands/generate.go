// ABOUTME: CLI command to generate a scored script for a persona
// ABOUTME: Runs the draft-score-select-polish loop and prints the result
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/scriptwriter/internal/engine"
	"github.com/harper/scriptwriter/internal/models"
	"github.com/harper/scriptwriter/internal/persona"
	"github.com/harper/scriptwriter/internal/score"
)

var (
	generatePersona      string
	generateDuration     int
	generateContext      string
	generateContentType  string
	generateRequirements []string
	generateSkipPolish   bool
	generateAttempts     int
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate a script for a persona",
		Long: `Generate a short-form video script for a persona and topic.

Drafts several candidates, scores each for quality, personalization,
and viral potential, then polishes the best one. The polished version
is only kept if it scores at least as well as the draft.

Examples:
  scriptwriter generate --persona a1b2c3d4 "morning routines"
  scriptwriter generate --persona a1b2c3d4 --duration 60 "how I learned Go"
  scriptwriter generate --persona a1b2c3d4 --content-type story --format json "my first startup"`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().StringVar(&generatePersona, "persona", "", "Persona ID to write as (required)")
	cmd.Flags().IntVar(&generateDuration, "duration", 30, "Video duration in seconds (15, 30, 45, 60, 90)")
	cmd.Flags().StringVar(&generateContext, "context", "", "Additional context for the script")
	cmd.Flags().StringVar(&generateContentType, "content-type", "", "Content style: educational, inspirational, entertainment, story, viral")
	cmd.Flags().StringArrayVar(&generateRequirements, "requirement", nil, "Specific requirement (can be repeated)")
	cmd.Flags().BoolVar(&generateSkipPolish, "skip-polish", false, "Skip the polish pass")
	cmd.Flags().IntVar(&generateAttempts, "attempts", 0, "Number of draft attempts (default from GENERATION_ATTEMPTS)")
	_ = cmd.MarkFlagRequired("persona")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return fmt.Errorf("initializing OpenAI client: %w", err)
	}

	personas, err := persona.NewStore(persona.DefaultDataDir(), client)
	if err != nil {
		return fmt.Errorf("opening persona store: %w", err)
	}
	p, err := personas.Get(generatePersona)
	if err != nil {
		return fmt.Errorf("loading persona: %w", err)
	}

	retriever, cleanupIndex, err := newRetriever(cfg, client)
	if err != nil {
		// Retrieval is optional; generation degrades to no examples
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: example retrieval unavailable: %v\n", err)
		}
		retriever = nil
		cleanupIndex = func() {}
	}
	defer cleanupIndex()

	history, cleanupDB, err := openHistory()
	if err != nil {
		return err
	}
	defer cleanupDB()

	attempts := cfg.Attempts
	if generateAttempts > 0 {
		attempts = generateAttempts
	}

	opts := engine.Options{
		Attempts:          attempts,
		DraftTemperature:  float32(cfg.DraftTemperature),
		TemperatureStep:   0.1,
		PolishTemperature: float32(cfg.PolishTemperature),
		MaxTokens:         cfg.MaxTokens,
		SkipPolish:        generateSkipPolish,
	}
	if verbose {
		opts.OnStateChange = func(status engine.Status) {
			fmt.Fprintf(cmd.ErrOrStderr(), "[%s]\n", status)
		}
	}

	var eng *engine.Engine
	if retriever != nil {
		eng = engine.New(client, retriever, score.NewScorer(), history, opts)
	} else {
		eng = engine.New(client, nil, score.NewScorer(), history, opts)
	}

	req := &models.ContentRequest{
		Topic:        args[0],
		Context:      generateContext,
		Duration:     generateDuration,
		Requirements: generateRequirements,
		ContentType:  generateContentType,
	}

	record, err := eng.Generate(cmd.Context(), p, req)
	if err != nil {
		return fmt.Errorf("generating script: %w", err)
	}

	return printRecord(cmd, record)
}

func printRecord(cmd *cobra.Command, record *models.ScriptRecord) error {
	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", record.Text)

	if quiet {
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\nSCORE\tVALUE\n")
	fmt.Fprintf(w, "-----\t-----\n")
	fmt.Fprintf(w, "Quality\t%.1f/100\n", record.Scores.Quality)
	fmt.Fprintf(w, "Personalization\t%.1f/20\n", record.Scores.Personalization)
	fmt.Fprintf(w, "Viral\t%.1f/100 (%s)\n", record.Scores.Viral, record.Scores.ViralGrade)
	fmt.Fprintf(w, "Polished\t%v\n", record.Polished)
	fmt.Fprintf(w, "Attempts\t%d\n", record.Attempts)
	w.Flush()

	for _, rec := range record.Scores.Recommendations {
		fmt.Fprintf(cmd.OutOrStdout(), "  • %s\n", rec)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nSaved as %s\n", record.ID)
	return nil
}
