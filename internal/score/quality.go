// ABOUTME: Quality scoring for generated scripts, 0-100
// ABOUTME: Weighs structure, word-count conformance, and caption length
package score

import (
	"github.com/harper/scriptwriter/internal/models"
	"github.com/harper/scriptwriter/internal/script"
)

// QualityWeights are the point weights for the quality components.
// They must sum to 100.
type QualityWeights struct {
	Structure float64
	Length    float64
	Caption   float64
}

// DefaultQualityWeights returns the standard quality weighting
func DefaultQualityWeights() QualityWeights {
	return QualityWeights{Structure: 40, Length: 40, Caption: 20}
}

// QualityScorer scores a script's structural and length conformance.
// Pure text analysis, no LLM calls, deterministic for the same input.
type QualityScorer struct {
	weights QualityWeights
}

// NewQualityScorer creates a scorer with the given weights. Zero-valued
// weights fall back to the defaults.
func NewQualityScorer(weights QualityWeights) *QualityScorer {
	if weights.Structure == 0 && weights.Length == 0 && weights.Caption == 0 {
		weights = DefaultQualityWeights()
	}
	return &QualityScorer{weights: weights}
}

// Score returns the quality score for a script against its request
func (q *QualityScorer) Score(text string, req *models.ContentRequest) float64 {
	sections := script.ParseSections(text)
	total := q.structureScore(sections) + q.lengthScore(text, req) + q.captionScore(sections)
	if total > 100 {
		total = 100
	}
	return total
}

// structureScore awards points for each required section present
func (q *QualityScorer) structureScore(sections script.Sections) float64 {
	required := len(script.RequiredSections)
	present := required - len(sections.Missing())
	return q.weights.Structure * float64(present) / float64(required)
}

// lengthScore awards full marks inside the word band and decays linearly
// with the distance outside it
func (q *QualityScorer) lengthScore(text string, req *models.ContentRequest) float64 {
	words := models.CountWords(text)
	low, high := req.WordBand()
	if words >= low && words <= high {
		return q.weights.Length
	}

	var overshoot int
	if words < low {
		overshoot = low - words
	} else {
		overshoot = words - high
	}

	penalty := float64(overshoot) / float64(req.TargetWordCount())
	remaining := q.weights.Length * (1 - penalty)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// captionScore awards full marks for a caption within the platform limit,
// half marks for an overlong one, and nothing when the caption is missing
func (q *QualityScorer) captionScore(sections script.Sections) float64 {
	if sections.Caption == "" {
		return 0
	}
	if !sections.CaptionWithinLimit() {
		return q.weights.Caption * 0.5
	}
	return q.weights.Caption
}
