// ABOUTME: Tests for history command group
// ABOUTME: Verifies subcommand structure and flag configuration

package commands

import (
	"strings"
	"testing"
)

func TestNewHistoryCmd(t *testing.T) {
	cmd := NewHistoryCmd()

	if cmd.Use != "history" {
		t.Errorf("Use = %q, want %q", cmd.Use, "history")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestHistoryCmd_Flags(t *testing.T) {
	cmd := NewHistoryCmd()

	personaFlag := cmd.Flags().Lookup("persona")
	if personaFlag == nil {
		t.Fatal("--persona flag not found")
	}

	limitFlag := cmd.Flags().Lookup("limit")
	if limitFlag == nil {
		t.Fatal("--limit flag not found")
	}
	if limitFlag.DefValue != "10" {
		t.Errorf("--limit default = %q, want %q", limitFlag.DefValue, "10")
	}
}

func TestHistoryCmd_Subcommands(t *testing.T) {
	cmd := NewHistoryCmd()

	expectedSubcommands := []string{
		"show",
		"delete",
	}

	for _, subCmdName := range expectedSubcommands {
		t.Run(subCmdName, func(t *testing.T) {
			found := false
			for _, sub := range cmd.Commands() {
				if strings.HasPrefix(sub.Use, subCmdName+" ") {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Subcommand %q not found", subCmdName)
			}
		})
	}
}

func TestHistoryCmd_Description(t *testing.T) {
	cmd := NewHistoryCmd()

	// Scores are frozen at generation time
	if !strings.Contains(cmd.Long, "never") {
		t.Error("Long description should state that scores are never recomputed")
	}
}
