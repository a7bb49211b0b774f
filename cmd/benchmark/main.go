// ABOUTME: Command-line benchmark runner for the scoring pipeline
// ABOUTME: Scores fixed scenarios and outputs JSON results

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harper/scriptwriter/benchmarks/scoring"
)

func main() {
	// Command-line flags
	testID := flag.String("test", "", "Run specific scenario by ID. If empty, runs all scenarios.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	// Print header
	fmt.Println("========================================")
	fmt.Println("Scriptwriter Scoring Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	runner := scoring.NewBenchmarkRunner(*verbose)

	// Run scenarios
	var results []scoring.TestResult

	if *testID == "" {
		fmt.Println("Running all scoring benchmark scenarios...")
		fmt.Println()
		results = runner.RunAllTests()
	} else {
		var found bool
		for _, scenario := range scoring.AllScenarios() {
			if scenario.ID == *testID {
				fmt.Printf("Running scenario: %s\n\n", scenario.Name)
				results = []scoring.TestResult{runner.RunTest(scenario)}
				found = true
				break
			}
		}
		if !found {
			log.Fatalf("Unknown scenario ID: %s", *testID)
		}
	}

	// Print summary
	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	passed := 0
	failed := 0

	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.TestID, result.TestName)
		fmt.Printf("  Quality: %.1f\n", result.Scores.Quality)
		fmt.Printf("  Personalization: %.1f\n", result.Scores.Personalization)
		fmt.Printf("  Viral: %.1f (%s)\n", result.Scores.Viral, result.Scores.ViralGrade)
		fmt.Printf("  Status: %s\n", result.Status)
		for _, failure := range result.Failures {
			fmt.Printf("    - %s\n", failure)
		}

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Scenarios: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	// Export results
	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	// Exit with error code if any scenarios failed
	if failed > 0 {
		os.Exit(1)
	}
}
