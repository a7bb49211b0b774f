// ABOUTME: Tests for draft and polish prompt assembly
// ABOUTME: Verifies persona details, example ordering, and length targets
package script

import (
	"strings"
	"testing"

	"github.com/harper/scriptwriter/internal/models"
)

func testPersona() *models.Persona {
	return &models.Persona{
		ID:               "p1",
		Name:             "Sarah",
		Story:            "Certified trainer helping busy professionals.",
		Expertise:        []string{"fitness", "nutrition"},
		VoiceStyle:       "dry and direct",
		HookPatterns:     []string{"Want to X in Y minutes?", "Stop doing X.", "Nobody tells you X.", "fourth pattern"},
		CTAPreferences:   []string{"Save this for later."},
		DefaultWordCount: 75,
	}
}

func TestBuildDraftPrompt(t *testing.T) {
	req := &models.ContentRequest{Topic: "desk stretches", Duration: 30, ContentType: "educational"}
	examples := []models.RetrievedExample{
		{Text: "FIRST EXAMPLE SCRIPT", Similarity: 0.9},
		{Text: "SECOND EXAMPLE SCRIPT", Similarity: 0.7},
	}

	prompt := BuildDraftPrompt(testPersona(), req, examples)

	for _, want := range []string{
		"Sarah",
		"fitness, nutrition",
		"dry and direct",
		"desk stretches",
		"~75 words, acceptable range 64-86",
		"HOOK, BODY, CTA, CAPTION, VISUAL DIRECTIONS, and HASHTAGS",
		"FIRST EXAMPLE SCRIPT",
		"SECOND EXAMPLE SCRIPT",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("draft prompt missing %q", want)
		}
	}

	// Examples must appear in similarity order
	if strings.Index(prompt, "FIRST EXAMPLE SCRIPT") > strings.Index(prompt, "SECOND EXAMPLE SCRIPT") {
		t.Error("examples out of order in prompt")
	}

	// Hook patterns are capped at three
	if strings.Contains(prompt, "fourth pattern") {
		t.Error("prompt should include at most 3 hook patterns")
	}

	// Content-type guidance is applied
	if !strings.Contains(prompt, contentTypeGuidance["educational"]) {
		t.Error("educational guidance missing")
	}
}

func TestBuildDraftPrompt_NoExamples(t *testing.T) {
	req := &models.ContentRequest{Topic: "desk stretches", Duration: 30}
	prompt := BuildDraftPrompt(testPersona(), req, nil)

	if strings.Contains(prompt, "previous scripts in the target style") {
		t.Error("example block should be omitted when there are no examples")
	}
	if !strings.Contains(prompt, "desk stretches") {
		t.Error("topic missing from prompt")
	}
}

func TestBuildPolishPrompt(t *testing.T) {
	req := &models.ContentRequest{Topic: "desk stretches", Duration: 30}
	draft := "HOOK: the winning draft text"

	prompt := BuildPolishPrompt(testPersona(), req, draft)

	if !strings.Contains(prompt, draft) {
		t.Error("polish prompt must include the draft verbatim")
	}
	if !strings.Contains(prompt, "75 words") {
		t.Error("polish prompt must state the word target")
	}
	if !strings.Contains(prompt, "dry and direct") {
		t.Error("polish prompt must carry the persona voice")
	}
}
