// ABOUTME: Tests for version command
// ABOUTME: Verifies build stamp display and SetVersion

package commands

import (
	"bytes"
	"strings"
	"testing"
)

// stashVersion resets the build stamp after a test mutates it
func stashVersion(t *testing.T) {
	t.Helper()
	version, commit, date := buildVersion, buildCommit, buildDate
	t.Cleanup(func() { SetVersion(version, commit, date) })
}

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestVersionCmd_Output(t *testing.T) {
	stashVersion(t)
	SetVersion("1.2.3", "abc123", "2026-01-31")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := output.String()
	want := "Scriptwriter 1.2.3 (commit abc123, built 2026-01-31)\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestVersionCmd_DefaultStamp(t *testing.T) {
	stashVersion(t)
	SetVersion("dev", "none", "unknown")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output.String(), "Scriptwriter dev") {
		t.Errorf("unstamped build should print the dev version, got %q", output.String())
	}
}

func TestVersionCmd_ExtraArgsIgnored(t *testing.T) {
	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"extra", "args"})

	_ = cmd.Execute()

	if !strings.Contains(output.String(), "Scriptwriter") {
		t.Error("Version output should still be produced with extra args")
	}
}
