// ABOUTME: Combined scorer producing the full score breakdown for a script
// ABOUTME: Bundles quality, personalization, and viral rubrics in one call
package score

import (
	"github.com/harper/scriptwriter/internal/models"
)

// Scorer evaluates a script on all three scales. Deterministic for the
// same text, persona, and request.
type Scorer struct {
	quality         *QualityScorer
	personalization *PersonalizationScorer
	viral           *ViralScorer
}

// NewScorer creates a combined scorer with default weights
func NewScorer() *Scorer {
	return NewScorerWithWeights(DefaultQualityWeights(), DefaultViralWeights())
}

// NewScorerWithWeights creates a combined scorer with custom weights
func NewScorerWithWeights(quality QualityWeights, viral ViralWeights) *Scorer {
	return &Scorer{
		quality:         NewQualityScorer(quality),
		personalization: NewPersonalizationScorer(),
		viral:           NewViralScorer(viral),
	}
}

// Viral exposes the viral scorer for clock injection in tests
func (s *Scorer) Viral() *ViralScorer {
	return s.viral
}

// Score evaluates a script against its persona and request
func (s *Scorer) Score(text string, persona *models.Persona, req *models.ContentRequest) models.ScoreBreakdown {
	viral := s.viral.Score(text, req.Topic)

	return models.ScoreBreakdown{
		Quality:         s.quality.Score(text, req),
		Personalization: s.personalization.Score(text, persona),
		Viral:           viral.Total,
		ViralGrade:      viral.Grade,
		ViralDimensions: viral.Dimensions,
		Recommendations: viral.Recommendations,
	}
}
