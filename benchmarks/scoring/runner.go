// ABOUTME: Benchmark runner for the scoring pipeline - scores scenarios and checks bounds
// ABOUTME: Runs deterministically with no network or LLM calls

package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harper/scriptwriter/internal/models"
	"github.com/harper/scriptwriter/internal/score"
)

// TestResult records the scores and pass/fail outcome for one scenario
type TestResult struct {
	TestID   string                `json:"test_id"`
	TestName string                `json:"test_name"`
	Scores   models.ScoreBreakdown `json:"scores"`
	Failures []string              `json:"failures,omitempty"`
	Status   string                `json:"status"`
}

// BenchmarkRunner scores scenarios against their expected bounds
type BenchmarkRunner struct {
	scorer  *score.Scorer
	verbose bool
}

// NewBenchmarkRunner creates a new benchmark runner
func NewBenchmarkRunner(verbose bool) *BenchmarkRunner {
	return &BenchmarkRunner{
		scorer:  score.NewScorer(),
		verbose: verbose,
	}
}

// RunAllTests scores every scenario
func (r *BenchmarkRunner) RunAllTests() []TestResult {
	scenarios := AllScenarios()
	results := make([]TestResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		results = append(results, r.RunTest(scenario))
	}
	return results
}

// RunTest scores a single scenario and checks its expectations
func (r *BenchmarkRunner) RunTest(scenario Scenario) TestResult {
	if r.verbose {
		fmt.Printf("Scoring %s: %s\n", scenario.ID, scenario.Description)
	}

	scores := r.scorer.Score(scenario.Script, &scenario.Persona, &scenario.Request)
	failures := checkExpectation(scores, scenario.Expect)

	status := "PASS"
	if len(failures) > 0 {
		status = "FAIL"
	}

	return TestResult{
		TestID:   scenario.ID,
		TestName: scenario.Name,
		Scores:   scores,
		Failures: failures,
		Status:   status,
	}
}

// checkExpectation compares scores against the scenario bounds. Zero-valued
// bounds are skipped.
func checkExpectation(scores models.ScoreBreakdown, expect Expectation) []string {
	var failures []string

	check := func(name string, value, min, max float64) {
		if min > 0 && value < min {
			failures = append(failures, fmt.Sprintf("%s %.1f below minimum %.1f", name, value, min))
		}
		if max > 0 && value > max {
			failures = append(failures, fmt.Sprintf("%s %.1f above maximum %.1f", name, value, max))
		}
	}

	check("quality", scores.Quality, expect.MinQuality, expect.MaxQuality)
	check("viral", scores.Viral, expect.MinViral, expect.MaxViral)
	check("personalization", scores.Personalization, expect.MinPersonalization, expect.MaxPersonalization)

	return failures
}

// ExportResults writes results to a JSON file
func (r *BenchmarkRunner) ExportResults(results []TestResult, outputPath string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	return nil
}
