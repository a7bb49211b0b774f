// ABOUTME: CLI commands to create, inspect, and manage personas
// ABOUTME: Personas are learned from a creator's story and example scripts
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/scriptwriter/internal/charm"
	"github.com/harper/scriptwriter/internal/models"
	"github.com/harper/scriptwriter/internal/persona"
)

var (
	personaName      string
	personaStory     string
	personaStoryFile string
	personaExamples  []string
)

// NewPersonaCmd creates the persona command group
func NewPersonaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persona",
		Short: "Manage creator personas",
		Long: `Manage creator personas.

A persona captures a creator's voice, expertise, audience, and content
patterns. It is learned once from their story (and optional example
scripts) and reused for every generation.

Examples:
  scriptwriter persona create --name "Maya" --story-file story.txt
  scriptwriter persona create --name "Maya" --story "I teach nurses..." --example script1.txt
  scriptwriter persona list
  scriptwriter persona show a1b2c3d4
  scriptwriter persona delete a1b2c3d4`,
		RunE: runPersonaList,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a persona from a creator's story",
		Long: `Create a persona from a creator's story.

The story is analyzed to extract expertise, voice style, audience, and
content patterns. Example scripts, when provided, teach the persona its
hook and CTA styles.`,
		RunE: runPersonaCreate,
	}
	createCmd.Flags().StringVar(&personaName, "name", "", "Creator's name (required)")
	createCmd.Flags().StringVar(&personaStory, "story", "", "The creator's story")
	createCmd.Flags().StringVar(&personaStoryFile, "story-file", "", "Read the story from a file")
	createCmd.Flags().StringArrayVar(&personaExamples, "example", nil, "Example script file (can be repeated)")
	_ = createCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all personas",
		RunE:  runPersonaList,
	}

	showCmd := &cobra.Command{
		Use:   "show <persona-id>",
		Short: "Show a persona's full profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runPersonaShow,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <persona-id>",
		Short: "Delete a persona",
		Args:  cobra.ExactArgs(1),
		RunE:  runPersonaDelete,
	}

	cmd.AddCommand(createCmd)
	cmd.AddCommand(listCmd)
	cmd.AddCommand(showCmd)
	cmd.AddCommand(deleteCmd)

	return cmd
}

// personaKV is the slice of the charm client the persona mirror needs
type personaKV interface {
	SetJSON(key string, value interface{}) error
	Delete(key string) error
}

// mirrorPersona copies the persona JSON into charm KV so other linked
// devices can pull it
func mirrorPersona(kv personaKV, p *models.Persona) error {
	return kv.SetJSON(charm.PersonaKey(p.ID), p)
}

// dropPersonaMirror removes a deleted persona's cloud copy
func dropPersonaMirror(kv personaKV, id string) error {
	return kv.Delete(charm.PersonaKey(id))
}

// openPersonaMirror connects to charm KV for persona mirroring. The mirror
// is best effort; callers warn and continue when this fails.
func openPersonaMirror() (*charm.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return charm.NewClient(&charm.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
}

func runPersonaCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	story := personaStory
	if personaStoryFile != "" {
		data, err := os.ReadFile(personaStoryFile)
		if err != nil {
			return fmt.Errorf("reading story file: %w", err)
		}
		story = string(data)
	}
	if strings.TrimSpace(story) == "" {
		return fmt.Errorf("a story is required (use --story or --story-file)")
	}

	var examples []string
	for _, path := range personaExamples {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading example %s: %w", path, err)
		}
		examples = append(examples, string(data))
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return fmt.Errorf("initializing OpenAI client: %w", err)
	}

	store, err := persona.NewStore(persona.DefaultDataDir(), client)
	if err != nil {
		return fmt.Errorf("opening persona store: %w", err)
	}

	p, err := store.Create(cmd.Context(), personaName, story, examples)
	if err != nil {
		return fmt.Errorf("creating persona: %w", err)
	}

	if kv, err := openPersonaMirror(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Charm unavailable, persona not mirrored: %v\n", err)
	} else {
		if err := mirrorPersona(kv, p); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to mirror persona to Charm: %v\n", err)
		}
		_ = kv.Close()
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created persona %s (%s)\n", p.ID, p.Name)
		if p.VoiceStyle != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  Voice: %s\n", p.VoiceStyle)
		}
		if len(p.Expertise) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  Expertise: %s\n", strings.Join(p.Expertise, ", "))
		}
	}
	return nil
}

func runPersonaList(cmd *cobra.Command, args []string) error {
	store, err := persona.NewStore(persona.DefaultDataDir(), nil)
	if err != nil {
		return fmt.Errorf("opening persona store: %w", err)
	}

	personas, err := store.List()
	if err != nil {
		return fmt.Errorf("listing personas: %w", err)
	}

	if len(personas) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No personas found. Create one with: scriptwriter persona create\n")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(personas, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\tVOICE\tEXPERTISE\tCREATED\n")
	fmt.Fprintf(w, "--\t----\t-----\t---------\t-------\n")
	for _, p := range personas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			truncate(p.Name, 20),
			truncate(p.VoiceStyle, 30),
			truncate(strings.Join(p.Expertise, ", "), 40),
			formatTime(p.CreatedAt))
	}
	w.Flush()
	return nil
}

func runPersonaShow(cmd *cobra.Command, args []string) error {
	store, err := persona.NewStore(persona.DefaultDataDir(), nil)
	if err != nil {
		return fmt.Errorf("opening persona store: %w", err)
	}

	p, err := store.Get(args[0])
	if err != nil {
		return fmt.Errorf("loading persona: %w", err)
	}

	jsonData, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
	return nil
}

func runPersonaDelete(cmd *cobra.Command, args []string) error {
	store, err := persona.NewStore(persona.DefaultDataDir(), nil)
	if err != nil {
		return fmt.Errorf("opening persona store: %w", err)
	}

	if err := store.Delete(args[0]); err != nil {
		return fmt.Errorf("deleting persona: %w", err)
	}

	if kv, err := openPersonaMirror(); err == nil {
		if err := dropPersonaMirror(kv, args[0]); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to remove persona's cloud copy: %v\n", err)
		}
		_ = kv.Close()
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted persona %s\n", args[0])
	}
	return nil
}
