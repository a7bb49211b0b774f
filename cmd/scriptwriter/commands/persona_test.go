// ABOUTME: Tests for persona command group
// ABOUTME: Verifies subcommand structure and create flags

package commands

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/harper/scriptwriter/internal/models"
)

func TestNewPersonaCmd(t *testing.T) {
	cmd := NewPersonaCmd()

	if cmd.Use != "persona" {
		t.Errorf("Use = %q, want %q", cmd.Use, "persona")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestPersonaCmd_Subcommands(t *testing.T) {
	cmd := NewPersonaCmd()

	expectedSubcommands := []string{
		"create",
		"list",
		"show",
		"delete",
	}

	for _, subCmdName := range expectedSubcommands {
		t.Run(subCmdName, func(t *testing.T) {
			found := false
			for _, sub := range cmd.Commands() {
				if sub.Use == subCmdName || strings.HasPrefix(sub.Use, subCmdName+" ") {
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

func TestPersonaCreateCmd_Flags(t *testing.T) {
	cmd := NewPersonaCmd()

	var createCmd *cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.Use == "create" {
			createCmd = sub
			break
		}
	}
	if createCmd == nil {
		t.Fatal("create subcommand not found")
	}

	for _, flagName := range []string{"name", "story", "story-file", "example"} {
		if createCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("--%s flag not found on create", flagName)
		}
	}
}

type fakePersonaKV struct {
	set     map[string]interface{}
	deleted []string
}

func (f *fakePersonaKV) SetJSON(key string, value interface{}) error {
	if f.set == nil {
		f.set = make(map[string]interface{})
	}
	f.set[key] = value
	return nil
}

func (f *fakePersonaKV) Delete(key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func TestPersonaMirror_Keys(t *testing.T) {
	kv := &fakePersonaKV{}

	p := &models.Persona{ID: "a1b2c3d4", Name: "Maya"}
	if err := mirrorPersona(kv, p); err != nil {
		t.Fatalf("mirrorPersona: %v", err)
	}
	if _, ok := kv.set["persona:a1b2c3d4"]; !ok {
		t.Errorf("persona should be mirrored under persona:<id>, got keys %v", kv.set)
	}

	if err := dropPersonaMirror(kv, "a1b2c3d4"); err != nil {
		t.Fatalf("dropPersonaMirror: %v", err)
	}
	if len(kv.deleted) != 1 || kv.deleted[0] != "persona:a1b2c3d4" {
		t.Errorf("deleted keys = %v, want [persona:a1b2c3d4]", kv.deleted)
	}
}

func TestPersonaCmd_Examples(t *testing.T) {
	cmd := NewPersonaCmd()

	expectedParts := []string{
		"persona create",
		"persona list",
		"persona delete",
	}

	for _, part := range expectedParts {
		if !strings.Contains(cmd.Long, part) {
			t.Errorf("Long description should contain %q", part)
		}
	}
}
