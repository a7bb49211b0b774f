// ABOUTME: Personalization scoring for generated scripts, 0-20
// ABOUTME: Measures lexical overlap with the persona's voice and patterns
package score

import (
	"strings"

	"github.com/harper/scriptwriter/internal/models"
	"github.com/harper/scriptwriter/internal/script"
)

// MaxPersonalizationScore is the ceiling of the personalization scale
const MaxPersonalizationScore = 20.0

// componentCap is the maximum contribution of each of the four components
const componentCap = 5.0

// PersonalizationScorer measures how much of the persona's voice made it
// into the generated text. Pure text analysis, deterministic.
type PersonalizationScorer struct{}

// NewPersonalizationScorer creates a personalization scorer
func NewPersonalizationScorer() *PersonalizationScorer {
	return &PersonalizationScorer{}
}

// Score returns 0-20 based on expertise, trait, voice, and hook overlap
func (p *PersonalizationScorer) Score(text string, persona *models.Persona) float64 {
	lower := strings.ToLower(text)

	total := expertiseOverlap(lower, persona.Expertise)
	total += traitOverlap(lower, persona.PersonalityTraits)
	total += voiceOverlap(lower, persona.VoiceStyle)
	total += hookOverlap(text, persona.HookPatterns)

	if total > MaxPersonalizationScore {
		total = MaxPersonalizationScore
	}
	return total
}

// expertiseOverlap counts expertise areas whose words appear in the script
func expertiseOverlap(lower string, expertise []string) float64 {
	var matches float64
	for _, area := range expertise {
		for _, word := range strings.Fields(strings.ToLower(area)) {
			if strings.Contains(lower, word) {
				matches++
				break
			}
		}
	}
	if matches > componentCap {
		return componentCap
	}
	return matches
}

// traitOverlap counts personality traits mentioned verbatim
func traitOverlap(lower string, traits []string) float64 {
	var matches float64
	for _, trait := range traits {
		if trait != "" && strings.Contains(lower, strings.ToLower(trait)) {
			matches++
		}
	}
	if matches > componentCap {
		return componentCap
	}
	return matches
}

// voiceOverlap awards full component marks when any voice descriptor word
// longer than three characters appears in the script
func voiceOverlap(lower, voiceStyle string) float64 {
	for _, word := range strings.Fields(strings.ToLower(voiceStyle)) {
		if len(word) > 3 && strings.Contains(lower, word) {
			return componentCap
		}
	}
	return 0
}

// hookOverlap awards full component marks when the script's hook opens the
// way one of the persona's hook patterns does
func hookOverlap(text string, patterns []string) float64 {
	hook := strings.ToLower(script.ParseSections(text).Hook)
	if hook == "" {
		return 0
	}

	for _, pattern := range patterns {
		lead := leadingWords(strings.ToLower(pattern), 2)
		if lead != "" && strings.HasPrefix(hook, lead) {
			return componentCap
		}
	}
	return 0
}

// leadingWords returns the first n words of s joined by single spaces
func leadingWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
