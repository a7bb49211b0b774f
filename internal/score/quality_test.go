// ABOUTME: Tests for quality scoring of structure, length, and caption
// ABOUTME: Covers the word-band conformance cases end to end
package score

import (
	"strings"
	"testing"

	"github.com/harper/scriptwriter/internal/models"
)

// scriptWithTotalWords builds a complete script whose total word count,
// headers included, equals the requested total.
func scriptWithTotalWords(t *testing.T, total int) string {
	t.Helper()
	skeleton := "HOOK: Stop scrolling right now.\nBODY:\nCTA: Save this for later.\nCAPTION: A short caption.\nHASHTAGS: #one #two #three"
	base := models.CountWords(skeleton)
	if total < base {
		t.Fatalf("cannot build script with %d words, skeleton alone has %d", total, base)
	}
	body := strings.TrimSpace(strings.Repeat("filler ", total-base))
	text := strings.Replace(skeleton, "BODY:\n", "BODY: "+body+"\n", 1)
	if got := models.CountWords(text); got != total {
		t.Fatalf("built script has %d words, want %d", got, total)
	}
	return text
}

func TestQualityScorer_FullMarks(t *testing.T) {
	q := NewQualityScorer(DefaultQualityWeights())
	req := &models.ContentRequest{Topic: "test", Duration: 30}

	text := scriptWithTotalWords(t, 75)
	if got := q.Score(text, req); got != 100 {
		t.Errorf("Score = %f, want 100 for complete in-band script", got)
	}
}

func TestQualityScorer_WordBandConformance30s(t *testing.T) {
	q := NewQualityScorer(DefaultQualityWeights())
	req := &models.ContentRequest{Topic: "sustainable fashion tips", Duration: 30}

	// Band for 75 words is [64, 86]
	inBandLow := q.Score(scriptWithTotalWords(t, 64), req)
	inBandHigh := q.Score(scriptWithTotalWords(t, 86), req)
	belowBand := q.Score(scriptWithTotalWords(t, 63), req)
	aboveBand := q.Score(scriptWithTotalWords(t, 87), req)

	if inBandLow != 100 || inBandHigh != 100 {
		t.Errorf("band edges should score full marks, got %f and %f", inBandLow, inBandHigh)
	}
	if belowBand >= inBandLow {
		t.Errorf("63 words should be penalized: %f >= %f", belowBand, inBandLow)
	}
	if aboveBand >= inBandHigh {
		t.Errorf("87 words should be penalized: %f >= %f", aboveBand, inBandHigh)
	}
}

func TestQualityScorer_WordBandConformance60s(t *testing.T) {
	q := NewQualityScorer(DefaultQualityWeights())
	req := &models.ContentRequest{Topic: "test", Duration: 60}

	// 127 words sits inside the band around the 150-word target
	if got := q.Score(scriptWithTotalWords(t, 127), req); got != 100 {
		t.Errorf("127-word script for 60s should score full length marks, got %f", got)
	}

	short := q.Score(scriptWithTotalWords(t, 40), req)
	if short >= 100 {
		t.Errorf("40-word script for 60s should be penalized, got %f", short)
	}
	// Length accounts for 40 points; a 40-word script loses most of them
	if short > 80 {
		t.Errorf("40-word script penalty too small, got %f", short)
	}
}

func TestQualityScorer_MissingSections(t *testing.T) {
	q := NewQualityScorer(DefaultQualityWeights())
	req := &models.ContentRequest{Topic: "test", Duration: 15}

	complete := scriptWithTotalWords(t, 35)
	bare := strings.TrimSpace(strings.Repeat("filler ", 35))

	if got, want := q.Score(bare, req), q.Score(complete, req); got >= want {
		t.Errorf("unstructured text should score below a complete script: %f >= %f", got, want)
	}
}

func TestQualityScorer_OverlongCaption(t *testing.T) {
	q := NewQualityScorer(DefaultQualityWeights())
	req := &models.ContentRequest{Topic: "test", Duration: 30}

	good := scriptWithTotalWords(t, 75)
	bad := strings.Replace(good, "CAPTION: A short caption.", "CAPTION: "+strings.Repeat("x", 200), 1)

	if q.Score(bad, req) >= q.Score(good, req) {
		t.Error("overlong caption should be penalized")
	}
}

func TestQualityScorer_Deterministic(t *testing.T) {
	q := NewQualityScorer(DefaultQualityWeights())
	req := &models.ContentRequest{Topic: "test", Duration: 30}
	text := scriptWithTotalWords(t, 70)

	first := q.Score(text, req)
	for i := 0; i < 5; i++ {
		if got := q.Score(text, req); got != first {
			t.Fatalf("score changed between runs: %f != %f", got, first)
		}
	}
}
