// ABOUTME: Persona store backed by JSON files under the XDG data directory
// ABOUTME: Creation runs one LLM extraction call plus pure-text pattern mining
package persona

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harper/scriptwriter/internal/models"
)

// Completer is the LLM call used for story extraction
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error)
}

// CreationError reports a failed persona creation. Nothing is persisted
// when it is returned.
type CreationError struct {
	Reason string
	Err    error
}

func (e *CreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("persona creation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("persona creation failed: %s", e.Reason)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// DefaultDataDir returns the persona directory following the XDG spec
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".local", "share", "scriptwriter", "personas")
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "scriptwriter", "personas")
}

// Store manages persona records as one JSON file per persona. Reads are
// safe concurrently; writes to the store are serialized by a mutex with
// last-write-wins semantics.
type Store struct {
	dir       string
	completer Completer
	mu        sync.Mutex
}

// NewStore creates a persona store rooted at dir. An empty dir uses the
// default data directory.
func NewStore(dir string, completer Completer) (*Store, error) {
	if dir == "" {
		dir = DefaultDataDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create persona directory: %w", err)
	}
	return &Store{dir: dir, completer: completer}, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, "persona_"+id+".json")
}

// Create builds a persona from a name, story, and optional example scripts.
// The story is analyzed with one low-temperature LLM call; hook and CTA
// patterns come from direct text analysis of up to three examples. On any
// failure nothing is written to disk.
func (s *Store) Create(ctx context.Context, name, story string, examples []string) (*models.Persona, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &CreationError{Reason: "name is required"}
	}
	if strings.TrimSpace(story) == "" {
		return nil, &CreationError{Reason: "story is required"}
	}
	if s.completer == nil {
		return nil, &CreationError{Reason: "no LLM client configured"}
	}

	insights, err := analyzeStory(ctx, s.completer, story)
	if err != nil {
		return nil, &CreationError{Reason: "story analysis failed", Err: err}
	}

	hooks, ctas := extractPatterns(examples)

	now := time.Now()
	p := &models.Persona{
		ID:                   uuid.New().String()[:8],
		Name:                 name,
		Story:                story,
		Expertise:            insights.Expertise,
		VoiceStyle:           insights.VoiceStyle,
		PersonalityTraits:    insights.Personality,
		HookPatterns:         hooks,
		StorytellingStyle:    insights.StorytellingStyle,
		CTAPreferences:       ctas,
		TargetAudience:       insights.TargetAudience,
		AudiencePainPoints:   insights.AudiencePainPoints,
		AudienceDesires:      insights.AudienceDesires,
		HighPerformingTopics: insights.BestTopics,
		DefaultWordCount:     models.WordsForDuration(30),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := p.Validate(); err != nil {
		return nil, &CreationError{Reason: "extracted persona is invalid", Err: err}
	}
	if err := s.write(p); err != nil {
		return nil, &CreationError{Reason: "could not persist persona", Err: err}
	}
	return p, nil
}

// Get loads a persona by ID
func (s *Store) Get(id string) (*models.Persona, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("persona not found: %s", id)
		}
		return nil, fmt.Errorf("failed to read persona %s: %w", id, err)
	}

	var p models.Persona
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse persona %s: %w", id, err)
	}
	return &p, nil
}

// Update applies a patch to a persona and persists the result
func (s *Store) Update(id string, patch models.PersonaPatch) (*models.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	p.Apply(patch)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("patched persona is invalid: %w", err)
	}
	if err := s.writeLocked(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all stored personas, newest first
func (s *Store) List() ([]*models.Persona, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}

	var personas []*models.Persona
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "persona_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(name, "persona_"), ".json")
		p, err := s.Get(id)
		if err != nil {
			continue
		}
		personas = append(personas, p)
	}

	sort.Slice(personas, func(i, j int) bool {
		return personas[i].CreatedAt.After(personas[j].CreatedAt)
	})
	return personas, nil
}

// Delete removes a persona file
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("persona not found: %s", id)
		}
		return fmt.Errorf("failed to delete persona %s: %w", id, err)
	}
	return nil
}

// write persists a persona, serializing concurrent writers
func (s *Store) write(p *models.Persona) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(p)
}

func (s *Store) writeLocked(p *models.Persona) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal persona: %w", err)
	}
	if err := os.WriteFile(s.path(p.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write persona file: %w", err)
	}
	return nil
}
