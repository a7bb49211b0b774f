// ABOUTME: Tests for shared utility functions used by CLI commands
// ABOUTME: Verifies truncate, formatTime, input reading, and validation helpers

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string unchanged",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length unchanged",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "long string truncated",
			input:  "hello world",
			maxLen: 8,
			want:   "hello...",
		},
		{
			name:   "very short maxLen",
			input:  "hello",
			maxLen: 2,
			want:   "he",
		},
		{
			name:   "empty string",
			input:  "",
			maxLen: 10,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		input    time.Time
		contains string
	}{
		{
			name:     "just now (seconds ago)",
			input:    now.Add(-30 * time.Second),
			contains: "just now",
		},
		{
			name:     "minutes ago",
			input:    now.Add(-5 * time.Minute),
			contains: "m ago",
		},
		{
			name:     "hours ago",
			input:    now.Add(-3 * time.Hour),
			contains: "h ago",
		},
		{
			name:     "days ago",
			input:    now.Add(-2 * 24 * time.Hour),
			contains: "d ago",
		},
		{
			name:     "weeks ago (shows date)",
			input:    now.Add(-14 * 24 * time.Hour),
			contains: "-", // Date format contains hyphens
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatTime(tt.input)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("formatTime() = %q, want to contain %q", got, tt.contains)
			}
		})
	}
}

func TestValidatePositiveInt(t *testing.T) {
	if err := validatePositiveInt(5, "limit"); err != nil {
		t.Errorf("validatePositiveInt(5) error = %v", err)
	}
	if err := validatePositiveInt(0, "limit"); err == nil {
		t.Error("validatePositiveInt(0) should fail")
	}
	if err := validatePositiveInt(-1, "limit"); err == nil {
		t.Error("validatePositiveInt(-1) should fail")
	}
}

func TestReadTextInput_FromArg(t *testing.T) {
	cmd := &cobra.Command{}
	text, err := readTextInput(cmd, []string{"hello world"}, "")
	if err != nil {
		t.Fatalf("readTextInput() error = %v", err)
	}
	if text != "hello world" {
		t.Errorf("text = %q, want %q", text, "hello world")
	}
}

func TestReadTextInput_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("  file content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	text, err := readTextInput(cmd, nil, path)
	if err != nil {
		t.Fatalf("readTextInput() error = %v", err)
	}
	if text != "file content" {
		t.Errorf("text = %q, want trimmed file content", text)
	}
}

func TestReadTextInput_FromStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("piped text\n"))

	text, err := readTextInput(cmd, nil, "")
	if err != nil {
		t.Fatalf("readTextInput() error = %v", err)
	}
	if text != "piped text" {
		t.Errorf("text = %q, want %q", text, "piped text")
	}
}

func TestReadTextInput_Empty(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("   \n"))

	if _, err := readTextInput(cmd, nil, ""); err == nil {
		t.Error("readTextInput() should fail on empty input")
	}
}

func TestReadTextInput_MissingFile(t *testing.T) {
	cmd := &cobra.Command{}
	if _, err := readTextInput(cmd, nil, "/nonexistent/input.txt"); err == nil {
		t.Error("readTextInput() should fail for missing file")
	}
}
