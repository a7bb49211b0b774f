// ABOUTME: Tests for search command
// ABOUTME: Verifies search command structure and flag validation

package commands

import (
	"strings"
	"testing"
)

func TestNewSearchCmd(t *testing.T) {
	cmd := NewSearchCmd()

	if cmd.Use != "search <topic>" {
		t.Errorf("Use = %q, want %q", cmd.Use, "search <topic>")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestSearchCmd_LimitFlag(t *testing.T) {
	cmd := NewSearchCmd()

	limitFlag := cmd.Flags().Lookup("limit")
	if limitFlag == nil {
		t.Fatal("--limit flag not found")
	}

	if limitFlag.DefValue != "5" {
		t.Errorf("--limit default = %q, want %q", limitFlag.DefValue, "5")
	}
}

func TestSearchCmd_ArgsValidation(t *testing.T) {
	cmd := NewSearchCmd()

	// Should require exactly 1 argument
	if cmd.Args == nil {
		t.Error("Args validator should be set")
	}
}

func TestSearchCmd_Description(t *testing.T) {
	cmd := NewSearchCmd()

	// Should mention semantic search over examples
	if !strings.Contains(cmd.Long, "semantic") {
		t.Error("Long description should mention semantic similarity")
	}
}
