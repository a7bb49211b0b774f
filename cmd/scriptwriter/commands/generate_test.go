// ABOUTME: Tests for generate command
// ABOUTME: Verifies command structure and flag configuration

package commands

import (
	"strings"
	"testing"
)

func TestNewGenerateCmd(t *testing.T) {
	cmd := NewGenerateCmd()

	if cmd.Use != "generate <topic>" {
		t.Errorf("Use = %q, want %q", cmd.Use, "generate <topic>")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestGenerateCmd_Flags(t *testing.T) {
	cmd := NewGenerateCmd()

	tests := []struct {
		flagName string
		defValue string
	}{
		{"persona", ""},
		{"duration", "30"},
		{"context", ""},
		{"content-type", ""},
		{"skip-polish", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				t.Fatalf("--%s flag not found", tt.flagName)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("--%s default = %q, want %q", tt.flagName, flag.DefValue, tt.defValue)
			}
		})
	}
}

func TestGenerateCmd_RequirementFlagRepeatable(t *testing.T) {
	cmd := NewGenerateCmd()

	flag := cmd.Flags().Lookup("requirement")
	if flag == nil {
		t.Fatal("--requirement flag not found")
	}
	if flag.Value.Type() != "stringArray" {
		t.Errorf("--requirement type = %q, want stringArray", flag.Value.Type())
	}
}

func TestGenerateCmd_ArgsValidation(t *testing.T) {
	cmd := NewGenerateCmd()

	// Should require exactly 1 argument
	if cmd.Args == nil {
		t.Error("Args validator should be set")
	}
}

func TestGenerateCmd_Examples(t *testing.T) {
	cmd := NewGenerateCmd()

	expectedParts := []string{
		"--persona",
		"--duration",
		"--format json",
	}

	for _, part := range expectedParts {
		if !strings.Contains(cmd.Long, part) {
			t.Errorf("Long description should contain %q", part)
		}
	}
}
