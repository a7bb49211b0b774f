// ABOUTME: Benchmark scenario data for the scoring pipeline
// ABOUTME: Defines scripts, requests, personas, and expected score ranges

package scoring

import (
	"strings"

	"github.com/harper/scriptwriter/internal/models"
)

// Scenario is one scored script with expected outcome bounds
type Scenario struct {
	ID          string
	Name        string
	Description string
	Script      string
	Request     models.ContentRequest
	Persona     models.Persona
	Expect      Expectation
}

// Expectation bounds the scores a scenario must produce. Zero-valued
// bounds are not checked.
type Expectation struct {
	MinQuality         float64
	MaxQuality         float64
	MinViral           float64
	MaxViral           float64
	MinPersonalization float64
	MaxPersonalization float64
}

const strongScript = `HOOK: Stop scrolling, because nobody teaches new nurses this charting trick.
BODY: When I started night shifts, charting ate two hours a night. A veteran nurse showed me her three line template. Chart the change, the action, the response. My documentation time dropped by half within a week.
CTA: Follow for more shortcuts nursing school never covered.
CAPTION: The charting trick nursing school skipped.
VISUAL DIRECTIONS: Close up at the nurses station, overlay the template.
HASHTAGS: #nursetok #nightshift #charting`

// GetStrongScenario is a well-formed 30s script: all sections, in the
// word band, caption under the limit.
func GetStrongScenario() Scenario {
	return Scenario{
		ID:          "strong-30s",
		Name:        "Well-formed 30 second script",
		Description: "All required sections present, word count inside the band",
		Script:      strongScript,
		Request:     models.ContentRequest{Topic: "charting shortcuts", Duration: 30, ContentType: "educational"},
		Expect: Expectation{
			MinQuality: 95,
			MinViral:   25,
		},
	}
}

// GetMissingSectionsScenario drops most required sections
func GetMissingSectionsScenario() Scenario {
	return Scenario{
		ID:          "missing-sections",
		Name:        "Script missing CTA, caption, and hashtags",
		Description: "Structure and caption points should be lost",
		Script: `HOOK: Here is a thing about charting.
BODY: It is shorter than it should be.`,
		Request: models.ContentRequest{Topic: "charting shortcuts", Duration: 30},
		Expect: Expectation{
			MaxQuality: 60,
		},
	}
}

// GetOverlongScenario pads a 60s script far past the word band
func GetOverlongScenario() Scenario {
	filler := strings.TrimSpace(strings.Repeat("keep showing up ", 56))
	scenario := GetStrongScenario()
	scenario.ID = "overlong-60s"
	scenario.Name = "Overlong 60 second script"
	scenario.Description = "Word count far above the band costs length points only"
	scenario.Script = strongScript + "\n" + filler
	scenario.Request = models.ContentRequest{Topic: "charting shortcuts", Duration: 60}
	scenario.Expect = Expectation{
		MinQuality: 65,
		MaxQuality: 92,
	}
	return scenario
}

// GetCaptionOverflowScenario replaces the caption with one past the
// platform limit
func GetCaptionOverflowScenario() Scenario {
	// Few words, many characters: keeps the word count in band while the
	// caption blows past the character limit
	longCaption := "CAPTION: " + strings.TrimSpace(strings.Repeat("unbelievablylongcaptionword ", 5))
	scenario := GetStrongScenario()
	scenario.ID = "caption-overflow"
	scenario.Name = "Caption past the 125 character limit"
	scenario.Description = "Overlong captions cost half the caption points"
	scenario.Script = strings.Replace(strongScript,
		"CAPTION: The charting trick nursing school skipped.", longCaption, 1)
	scenario.Expect = Expectation{
		MinQuality: 80,
		MaxQuality: 95,
	}
	return scenario
}

// GetPersonalizedScenario pairs the strong script with a persona whose
// expertise and hook patterns it matches
func GetPersonalizedScenario() Scenario {
	scenario := GetStrongScenario()
	scenario.ID = "personalized"
	scenario.Name = "Script matching the persona's voice"
	scenario.Description = "Expertise and hook pattern overlap earn personalization points"
	scenario.Persona = models.Persona{
		ID:           "bench",
		Name:         "Bench Persona",
		Expertise:    []string{"nursing", "charting"},
		HookPatterns: []string{"Stop scrolling"},
	}
	scenario.Expect = Expectation{
		MinQuality:         95,
		MinPersonalization: 6,
	}
	return scenario
}

// GetMismatchedScenario pairs the strong script with an unrelated persona
func GetMismatchedScenario() Scenario {
	scenario := GetStrongScenario()
	scenario.ID = "mismatched"
	scenario.Name = "Script unrelated to the persona"
	scenario.Description = "No overlap means few personalization points"
	scenario.Persona = models.Persona{
		ID:           "bench",
		Name:         "Bench Persona",
		Expertise:    []string{"woodworking"},
		HookPatterns: []string{"Day one of building"},
	}
	scenario.Expect = Expectation{
		MaxPersonalization: 5,
	}
	return scenario
}

// AllScenarios returns every benchmark scenario
func AllScenarios() []Scenario {
	return []Scenario{
		GetStrongScenario(),
		GetMissingSectionsScenario(),
		GetOverlongScenario(),
		GetCaptionOverflowScenario(),
		GetPersonalizedScenario(),
		GetMismatchedScenario(),
	}
}
