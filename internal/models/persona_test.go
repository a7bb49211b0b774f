// ABOUTME: Tests for Persona validation and patch merging
// ABOUTME: Verifies invariants and duplicate-free list merging

package models

import (
	"testing"
	"time"
)

func validPersona() *Persona {
	return &Persona{
		ID:               "abc12345",
		Name:             "Sarah",
		Story:            "Certified trainer helping busy professionals.",
		Expertise:        []string{"fitness"},
		DefaultWordCount: 75,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func TestPersona_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Persona)
		wantErr bool
	}{
		{"valid", func(p *Persona) {}, false},
		{"missing ID", func(p *Persona) { p.ID = "" }, true},
		{"missing name", func(p *Persona) { p.Name = "" }, true},
		{"zero word count", func(p *Persona) { p.DefaultWordCount = 0 }, true},
		{"negative word count", func(p *Persona) { p.DefaultWordCount = -10 }, true},
		{"off-tier word count", func(p *Persona) { p.DefaultWordCount = 100 }, true},
		{"60s tier word count", func(p *Persona) { p.DefaultWordCount = 150 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPersona()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPersona_Apply(t *testing.T) {
	p := validPersona()
	before := p.UpdatedAt

	voice := "dry and direct"
	words := 150
	p.Apply(PersonaPatch{
		VoiceStyle:       &voice,
		DefaultWordCount: &words,
		Expertise:        []string{"fitness", "nutrition"},
		HookPatterns:     []string{"Want to X in Y minutes?"},
	})

	if p.VoiceStyle != "dry and direct" {
		t.Errorf("VoiceStyle = %q", p.VoiceStyle)
	}
	if p.DefaultWordCount != 150 {
		t.Errorf("DefaultWordCount = %d, want 150", p.DefaultWordCount)
	}
	// "fitness" was already present and must not be duplicated
	if len(p.Expertise) != 2 {
		t.Errorf("Expertise = %v, want 2 unique entries", p.Expertise)
	}
	if len(p.HookPatterns) != 1 {
		t.Errorf("HookPatterns = %v, want 1 entry", p.HookPatterns)
	}
	if !p.UpdatedAt.After(before) && !p.UpdatedAt.Equal(before) {
		t.Error("UpdatedAt should be refreshed by Apply")
	}
}

func TestPersona_Apply_EmptyStringsIgnored(t *testing.T) {
	p := validPersona()
	empty := ""
	p.Apply(PersonaPatch{Name: &empty, Expertise: []string{""}})

	if p.Name != "Sarah" {
		t.Errorf("Name = %q, empty patch value should be ignored", p.Name)
	}
	if len(p.Expertise) != 1 {
		t.Errorf("Expertise = %v, empty string should not be appended", p.Expertise)
	}
}
