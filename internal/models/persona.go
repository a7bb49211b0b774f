// ABOUTME: Persona represents a creator's learned writing identity
// ABOUTME: Built from their onboarding story and example scripts, stored as JSON
package models

import (
	"fmt"
	"strings"
	"time"
)

// Persona captures everything we know about one creator's voice and audience.
// The ID is assigned at creation and never changes.
type Persona struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Core identity
	Story             string   `json:"story"`
	Expertise         []string `json:"expertise,omitempty"`
	VoiceStyle        string   `json:"voice_style,omitempty"`
	PersonalityTraits []string `json:"personality_traits,omitempty"`

	// Content patterns learned from their scripts
	HookPatterns      []string `json:"hook_patterns,omitempty"`
	StorytellingStyle string   `json:"storytelling_style,omitempty"`
	CTAPreferences    []string `json:"cta_preferences,omitempty"`

	// Audience understanding
	TargetAudience     string   `json:"target_audience,omitempty"`
	AudiencePainPoints []string `json:"audience_pain_points,omitempty"`
	AudienceDesires    []string `json:"audience_desires,omitempty"`

	// Performance intelligence
	HighPerformingTopics []string `json:"high_performing_topics,omitempty"`
	DefaultWordCount     int      `json:"default_word_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the persona invariants before it is accepted by the store
func (p *Persona) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("persona ID is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("persona name is required")
	}
	if p.DefaultWordCount <= 0 {
		return fmt.Errorf("default word count must be positive, got %d", p.DefaultWordCount)
	}
	// The default must correspond to one of the supported duration tiers
	valid := false
	for _, d := range SupportedDurations {
		if p.DefaultWordCount == WordsForDuration(d) {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("default word count %d does not match any supported duration tier", p.DefaultWordCount)
	}
	return nil
}

// PersonaPatch describes a partial persona update. Nil fields are left unchanged.
type PersonaPatch struct {
	Name                 *string  `json:"name,omitempty"`
	Story                *string  `json:"story,omitempty"`
	Expertise            []string `json:"expertise,omitempty"`
	VoiceStyle           *string  `json:"voice_style,omitempty"`
	PersonalityTraits    []string `json:"personality_traits,omitempty"`
	HookPatterns         []string `json:"hook_patterns,omitempty"`
	StorytellingStyle    *string  `json:"storytelling_style,omitempty"`
	CTAPreferences       []string `json:"cta_preferences,omitempty"`
	TargetAudience       *string  `json:"target_audience,omitempty"`
	AudiencePainPoints   []string `json:"audience_pain_points,omitempty"`
	AudienceDesires      []string `json:"audience_desires,omitempty"`
	HighPerformingTopics []string `json:"high_performing_topics,omitempty"`
	DefaultWordCount     *int     `json:"default_word_count,omitempty"`
}

// Apply merges the patch into the persona. List fields are appended without
// duplicates rather than replaced, matching how patterns accumulate over time.
func (p *Persona) Apply(patch PersonaPatch) {
	if patch.Name != nil && *patch.Name != "" {
		p.Name = *patch.Name
	}
	if patch.Story != nil && *patch.Story != "" {
		p.Story = *patch.Story
	}
	if patch.VoiceStyle != nil {
		p.VoiceStyle = *patch.VoiceStyle
	}
	if patch.StorytellingStyle != nil {
		p.StorytellingStyle = *patch.StorytellingStyle
	}
	if patch.TargetAudience != nil {
		p.TargetAudience = *patch.TargetAudience
	}
	if patch.DefaultWordCount != nil && *patch.DefaultWordCount > 0 {
		p.DefaultWordCount = *patch.DefaultWordCount
	}
	p.Expertise = mergeUnique(p.Expertise, patch.Expertise)
	p.PersonalityTraits = mergeUnique(p.PersonalityTraits, patch.PersonalityTraits)
	p.HookPatterns = mergeUnique(p.HookPatterns, patch.HookPatterns)
	p.CTAPreferences = mergeUnique(p.CTAPreferences, patch.CTAPreferences)
	p.AudiencePainPoints = mergeUnique(p.AudiencePainPoints, patch.AudiencePainPoints)
	p.AudienceDesires = mergeUnique(p.AudienceDesires, patch.AudienceDesires)
	p.HighPerformingTopics = mergeUnique(p.HighPerformingTopics, patch.HighPerformingTopics)
	p.UpdatedAt = time.Now()
}

// mergeUnique appends items not already present in the slice
func mergeUnique(existing, additions []string) []string {
	for _, a := range additions {
		found := false
		for _, e := range existing {
			if e == a {
				found = true
				break
			}
		}
		if !found && a != "" {
			existing = append(existing, a)
		}
	}
	return existing
}
