// ABOUTME: ContentRequest describes one generation ask and its length math
// ABOUTME: Maps video duration to a target word count via a fixed rate table
package models

import (
	"fmt"
	"math"
	"strings"
)

// SupportedDurations are the video duration tiers (in seconds) a request may target
var SupportedDurations = []int{15, 30, 45, 60, 90}

// wordRateTable maps duration in seconds to the target script word count.
// Roughly 2.3-2.6 words per second of speech. The exact values are empirical
// defaults, not derived from a model.
var wordRateTable = map[int]int{
	15: 35,
	30: 75,
	45: 115,
	60: 150,
	90: 225,
}

// WordBandTolerance is the acceptable deviation from the target word count
const WordBandTolerance = 0.15

// WordsForDuration returns the target word count for a supported duration,
// or 0 if the duration is not a supported tier.
func WordsForDuration(seconds int) int {
	return wordRateTable[seconds]
}

// ContentRequest is one generation ask. Immutable once accepted by the engine.
type ContentRequest struct {
	Topic        string   `json:"topic"`
	Context      string   `json:"context,omitempty"`
	Duration     int      `json:"duration"` // seconds, from SupportedDurations
	Requirements []string `json:"requirements,omitempty"`
	ContentType  string   `json:"content_type,omitempty"` // educational, inspirational, entertainment, story, viral
	Urgency      string   `json:"urgency,omitempty"`
}

// Validate checks the request invariants
func (r *ContentRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("topic is required")
	}
	if _, ok := wordRateTable[r.Duration]; !ok {
		return fmt.Errorf("duration %ds is not supported (choose one of %v)", r.Duration, SupportedDurations)
	}
	return nil
}

// TargetWordCount derives the word target from the duration. Always recomputed
// from the rate table, never cached.
func (r *ContentRequest) TargetWordCount() int {
	return wordRateTable[r.Duration]
}

// WordBand returns the acceptable [min, max] word count band around the
// target. The tolerance is rounded to whole words before being applied, so
// a 150-word target yields [127, 173] and a 75-word target yields [64, 86].
func (r *ContentRequest) WordBand() (int, int) {
	target := r.TargetWordCount()
	tolerance := int(math.Round(float64(target) * WordBandTolerance))
	return target - tolerance, target + tolerance
}
