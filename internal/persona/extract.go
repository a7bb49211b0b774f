// ABOUTME: LLM-assisted story analysis and pure-text pattern extraction
// ABOUTME: One low-temperature extraction call, heuristic fallback on bad JSON
package persona

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/harper/scriptwriter/internal/script"
)

// ExtractionTemperature keeps the story analysis deterministic-leaning
const ExtractionTemperature = 0.3

// maxPatternExamples caps how many example scripts feed pattern extraction
const maxPatternExamples = 3

// storyInsights is the JSON shape the extraction call returns
type storyInsights struct {
	Expertise          []string `json:"expertise"`
	VoiceStyle         string   `json:"voice_style"`
	Personality        []string `json:"personality"`
	TargetAudience     string   `json:"target_audience"`
	AudiencePainPoints []string `json:"audience_pain_points"`
	AudienceDesires    []string `json:"audience_desires"`
	StorytellingStyle  string   `json:"storytelling_style"`
	BestTopics         []string `json:"best_topics"`
}

const extractionSystemPrompt = `You analyze a content creator's story and return structured insights as JSON. Respond with only the JSON object, no commentary.`

func buildExtractionPrompt(story string) string {
	return fmt.Sprintf(`Analyze this creator's story and extract insights for content creation:

STORY:
%s

Return a JSON object with exactly these keys:
{
  "expertise": ["areas of expertise"],
  "voice_style": "their communication style",
  "personality": ["personality traits"],
  "target_audience": "who they speak to",
  "audience_pain_points": ["what their audience struggles with"],
  "audience_desires": ["what their audience wants"],
  "storytelling_style": "how they tell stories",
  "best_topics": ["topics they cover well"]
}

Be specific and insightful. Focus on what makes them unique.`, story)
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseInsights pulls the JSON object out of the LLM response. Models
// sometimes wrap the JSON in prose or code fences.
func parseInsights(response string) (*storyInsights, error) {
	raw := jsonObjectPattern.FindString(response)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in extraction response")
	}

	var insights storyInsights
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}
	return &insights, nil
}

// fallbackInsights returns safe generic insights when extraction output is
// unusable
func fallbackInsights() *storyInsights {
	return &storyInsights{
		Expertise:          []string{"content creation"},
		VoiceStyle:         "authentic and relatable",
		Personality:        []string{"helpful", "engaging"},
		TargetAudience:     "social media users",
		AudiencePainPoints: []string{"lack of engagement", "content ideas"},
		AudienceDesires:    []string{"audience growth"},
		StorytellingStyle:  "personal experience",
	}
}

// analyzeStory runs the single extraction call. Retry behavior lives in the
// completer; a malformed response degrades to the fallback insights.
func analyzeStory(ctx context.Context, completer Completer, story string) (*storyInsights, error) {
	response, err := completer.Complete(ctx, extractionSystemPrompt, buildExtractionPrompt(story), ExtractionTemperature, 800)
	if err != nil {
		return nil, err
	}

	insights, err := parseInsights(response)
	if err != nil {
		return fallbackInsights(), nil
	}
	return insights, nil
}

// extractPatterns pulls hook and CTA patterns from example scripts with pure
// text analysis, no LLM call.
func extractPatterns(examples []string) (hooks, ctas []string) {
	if len(examples) > maxPatternExamples {
		examples = examples[:maxPatternExamples]
	}

	for _, example := range examples {
		sections := script.ParseSections(example)
		if hook := firstLine(sections.Hook); hook != "" {
			hooks = append(hooks, hook)
		}
		if cta := firstLine(sections.CTA); cta != "" {
			ctas = append(ctas, cta)
		}
	}
	return hooks, ctas
}

// firstLine returns the first non-empty line of a section
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
