// ABOUTME: Builds the drafting and polish prompts sent to the LLM
// ABOUTME: Combines persona voice, retrieved examples, and length targets
package script

import (
	"fmt"
	"strings"

	"github.com/harper/scriptwriter/internal/models"
)

// SystemPrompt is the fixed system instruction for script drafting
const SystemPrompt = `You are a skilled short-form video content creator who writes engaging, conversational scripts.

Your writing style is:
- Witty, warm, and conversational
- Uses short paragraphs and sentences
- Includes rhetorical questions to engage viewers
- Incorporates sensory details and vivid descriptions
- Ends with a friendly call-to-action
- Authentic and relatable tone

Structure your scripts with:
1. HOOK: Attention-grabbing opening (first 3 seconds)
2. BODY: Main content with value/entertainment
3. CTA: Clear call-to-action
4. CAPTION: Caption for the post (<=125 characters)
5. VISUAL DIRECTIONS: Brief notes for video creation
6. HASHTAGS: 5-7 relevant hashtags`

// PolishSystemPrompt is the system instruction for the editorial polish pass
const PolishSystemPrompt = `You are an editor for short-form video scripts. Improve clarity, pacing, and hook strength while preserving the author's voice, structure, and length. Never add new sections or remove existing ones.`

// contentTypeGuidance adds a per-content-type angle to the draft prompt
var contentTypeGuidance = map[string]string{
	"educational":   "Teach one concrete, actionable thing. Lead with the payoff, then the steps.",
	"inspirational": "Tell a transformation arc. Make the viewer feel the before and the after.",
	"entertainment": "Prioritize surprise and humor. Keep the energy high from the first line.",
	"story":         "Open mid-scene. Use specific sensory detail and a clear turning point.",
	"viral":         "Maximize the curiosity gap in the hook and make the payoff shareable.",
}

// BuildDraftPrompt assembles the user prompt for one generation attempt
func BuildDraftPrompt(persona *models.Persona, req *models.ContentRequest, examples []models.RetrievedExample) string {
	var b strings.Builder
	target := req.TargetWordCount()
	low, high := req.WordBand()

	fmt.Fprintf(&b, "You are creating a highly personalized %d-second video script for %s.\n\n", req.Duration, persona.Name)

	b.WriteString("CREATOR PERSONA:\n")
	fmt.Fprintf(&b, "- Name: %s\n", persona.Name)
	if persona.Story != "" {
		fmt.Fprintf(&b, "- Story: %s\n", persona.Story)
	}
	if len(persona.Expertise) > 0 {
		fmt.Fprintf(&b, "- Expertise: %s\n", strings.Join(persona.Expertise, ", "))
	}
	if persona.VoiceStyle != "" {
		fmt.Fprintf(&b, "- Voice: %s\n", persona.VoiceStyle)
	}
	if len(persona.PersonalityTraits) > 0 {
		fmt.Fprintf(&b, "- Personality: %s\n", strings.Join(persona.PersonalityTraits, ", "))
	}
	if persona.StorytellingStyle != "" {
		fmt.Fprintf(&b, "- Storytelling style: %s\n", persona.StorytellingStyle)
	}

	if persona.TargetAudience != "" || len(persona.AudiencePainPoints) > 0 || len(persona.AudienceDesires) > 0 {
		b.WriteString("\nAUDIENCE:\n")
		if persona.TargetAudience != "" {
			fmt.Fprintf(&b, "- Target audience: %s\n", persona.TargetAudience)
		}
		if len(persona.AudiencePainPoints) > 0 {
			fmt.Fprintf(&b, "- Pain points: %s\n", strings.Join(persona.AudiencePainPoints, ", "))
		}
		if len(persona.AudienceDesires) > 0 {
			fmt.Fprintf(&b, "- Desires: %s\n", strings.Join(persona.AudienceDesires, ", "))
		}
	}

	if len(persona.HookPatterns) > 0 {
		fmt.Fprintf(&b, "\nHook style: %s\n", strings.Join(head(persona.HookPatterns, 3), ", "))
	}
	if len(persona.CTAPreferences) > 0 {
		fmt.Fprintf(&b, "CTA style: %s\n", strings.Join(head(persona.CTAPreferences, 3), ", "))
	}

	if len(examples) > 0 {
		b.WriteString("\nHere are examples of previous scripts in the target style:\n")
		for _, ex := range examples {
			b.WriteString("\n")
			b.WriteString(ex.Text)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nCONTENT REQUEST:\n")
	fmt.Fprintf(&b, "- Topic: %s\n", req.Topic)
	if req.Context != "" {
		fmt.Fprintf(&b, "- Context: %s\n", req.Context)
	}
	fmt.Fprintf(&b, "- Target length: %d seconds (~%d words, acceptable range %d-%d)\n", req.Duration, target, low, high)
	if req.ContentType != "" {
		fmt.Fprintf(&b, "- Content type: %s\n", req.ContentType)
		if guidance, ok := contentTypeGuidance[strings.ToLower(req.ContentType)]; ok {
			fmt.Fprintf(&b, "- Approach: %s\n", guidance)
		}
	}
	if len(req.Requirements) > 0 {
		fmt.Fprintf(&b, "- Special requirements: %s\n", strings.Join(req.Requirements, ", "))
	}

	fmt.Fprintf(&b, "\nWrite the script in %s's voice, aiming for %d words.\n", persona.Name, target)
	b.WriteString("Include all required sections: HOOK, BODY, CTA, CAPTION, VISUAL DIRECTIONS, and HASHTAGS.\n")

	return b.String()
}

// BuildPolishPrompt assembles the user prompt for the polish pass on the
// winning draft only
func BuildPolishPrompt(persona *models.Persona, req *models.ContentRequest, draft string) string {
	var b strings.Builder
	target := req.TargetWordCount()

	fmt.Fprintf(&b, "Polish this %d-second video script for %s:\n\n%s\n\n", req.Duration, persona.Name, draft)
	b.WriteString("REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Keep the length close to %d words\n", target)
	b.WriteString("- Sharpen the hook for maximum stopping power\n")
	b.WriteString("- Improve flow and clarity\n")
	b.WriteString("- Strengthen the call-to-action\n")
	if persona.VoiceStyle != "" {
		fmt.Fprintf(&b, "- Maintain the %s voice\n", persona.VoiceStyle)
	} else {
		fmt.Fprintf(&b, "- Maintain %s's voice exactly\n", persona.Name)
	}
	b.WriteString("- Keep the same section structure\n\n")
	b.WriteString("Return only the polished script.\n")

	return b.String()
}

// head returns at most n leading elements of a slice
func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
