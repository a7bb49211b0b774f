// ABOUTME: Generation attempt, score breakdown, and persisted script record models
// ABOUTME: Attempts live only for one request; the winner is frozen into a ScriptRecord
package models

import (
	"strings"
	"time"
)

// ScoreBreakdown holds the three independent scores for one script text.
// Quality and Viral are 0-100, Personalization is 0-20. Scores are frozen at
// selection time and never recomputed for a persisted record.
type ScoreBreakdown struct {
	Quality         float64            `json:"quality"`
	Personalization float64            `json:"personalization"`
	Viral           float64            `json:"viral"`
	ViralGrade      string             `json:"viral_grade,omitempty"`
	ViralDimensions map[string]float64 `json:"viral_dimensions,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
}

// GenerationAttempt is one candidate script produced during a request.
// Owned by the engine for the duration of the request and discarded afterwards,
// except for the winner.
type GenerationAttempt struct {
	Index  int            `json:"index"`
	Text   string         `json:"text"`
	Scores ScoreBreakdown `json:"scores"`
	Err    error          `json:"-"`
}

// Failed reports whether this attempt produced no usable text
func (a *GenerationAttempt) Failed() bool {
	return a.Err != nil
}

// WordCount returns the whitespace-separated word count of the attempt text
func (a *GenerationAttempt) WordCount() int {
	return CountWords(a.Text)
}

// CountWords counts whitespace-separated words in a script text
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ScriptRecord is the persisted outcome of one generation request. Exactly one
// record is written per successful request.
type ScriptRecord struct {
	ID        string         `json:"id"`
	PersonaID string         `json:"persona_id"`
	Request   ContentRequest `json:"request"`
	Text      string         `json:"text"`
	Scores    ScoreBreakdown `json:"scores"`
	Polished  bool           `json:"polished"`
	Attempts  int            `json:"attempts"`
	CreatedAt time.Time      `json:"created_at"`
}

// RetrievedExample is a past script pulled from the vector index for prompt context
type RetrievedExample struct {
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
	Source     string  `json:"source"`
}
