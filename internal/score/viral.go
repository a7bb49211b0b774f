// ABOUTME: Viral-potential scoring on a fixed nine-dimension rubric, 0-100
// ABOUTME: Keyword and pattern heuristics with documented point weights
package score

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/harper/scriptwriter/internal/script"
)

// Dimension names of the viral rubric
const (
	DimHookStrength     = "hook_strength"
	DimEmotionalTrigger = "emotional_trigger"
	DimCuriosityGap     = "curiosity_gap"
	DimValueProposition = "value_proposition"
	DimCallToAction     = "call_to_action"
	DimHashtagStrategy  = "hashtag_strategy"
	DimTimingRelevance  = "timing_relevance"
	DimShareability     = "shareability"
	DimAuthenticity     = "authenticity"
)

// ViralWeights maps each rubric dimension to its point weight
type ViralWeights map[string]float64

// DefaultViralWeights returns the standard rubric weights, totalling 100
func DefaultViralWeights() ViralWeights {
	return ViralWeights{
		DimHookStrength:     20,
		DimEmotionalTrigger: 18,
		DimCuriosityGap:     15,
		DimValueProposition: 12,
		DimCallToAction:     10,
		DimHashtagStrategy:  8,
		DimTimingRelevance:  7,
		DimShareability:     6,
		DimAuthenticity:     4,
	}
}

// ViralScore is the rubric result with per-dimension breakdown
type ViralScore struct {
	Total           float64
	Grade           string
	Dimensions      map[string]float64
	Recommendations []string
}

// ViralScorer analyzes script text for viral potential. All heuristics are
// pure text analysis; the clock is injectable so timing relevance stays
// deterministic in tests.
type ViralScorer struct {
	weights ViralWeights
	now     func() time.Time
}

// NewViralScorer creates a scorer with the given weights. A nil weights map
// uses the defaults.
func NewViralScorer(weights ViralWeights) *ViralScorer {
	if weights == nil {
		weights = DefaultViralWeights()
	}
	return &ViralScorer{weights: weights, now: time.Now}
}

// WithClock overrides the clock used for timing relevance
func (v *ViralScorer) WithClock(now func() time.Time) *ViralScorer {
	v.now = now
	return v
}

var emotionalTriggers = map[string][]string{
	"curiosity":    {"secret", "hidden", "nobody", "everyone", "never", "always", "truth", "reality"},
	"urgency":      {"now", "today", "immediately", "quick", "fast", "instant"},
	"exclusivity":  {"exclusive", "only", "special", "limited", "rare", "unique", "first"},
	"surprise":     {"shocking", "unbelievable", "amazing", "incredible", "mind-blowing", "unexpected"},
	"fear":         {"mistake", "wrong", "avoid", "danger", "warning", "careful", "beware"},
	"desire":       {"want", "need", "must", "essential", "important", "crucial", "vital"},
	"social proof": {"everyone", "millions", "thousands", "popular", "trending", "viral"},
	"achievement":  {"success", "win", "achieve", "accomplish", "master", "expert"},
}

var highImpactEmotions = []string{"curiosity", "urgency", "surprise", "exclusivity"}

var viralHookPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bsecret\b.*\bthat\b`),
	regexp.MustCompile(`\bnobody\b.*\btells\b`),
	regexp.MustCompile(`\bwant to\b.*\bbut\b`),
	regexp.MustCompile(`\bstop\b.*\bdoing\b`),
	regexp.MustCompile(`\bmistake\b.*\bmaking\b`),
	regexp.MustCompile(`\bwhy\b.*\bis\b`),
	regexp.MustCompile(`\bhow\b.*\bwithout\b`),
	regexp.MustCompile(`\bif you\b.*\bthen\b`),
	regexp.MustCompile(`\bpeople don't\b`),
}

var curiosityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bbut first\b`),
	regexp.MustCompile(`\bbefore (?:you|we|i)\b`),
	regexp.MustCompile(`\bthe (?:secret|truth|reason|method)\b`),
	regexp.MustCompile(`\bwhat (?:if|you|nobody|everyone)\b`),
	regexp.MustCompile(`\bwhy (?:most|some|many|everyone)\b`),
	regexp.MustCompile(`\bhow (?:to|you can|i)\b`),
	regexp.MustCompile(`\bnever (?:knew|thought|realized)\b`),
	regexp.MustCompile(`\bhere's (?:what|why|how|the)\b`),
	regexp.MustCompile(`\bturns out\b`),
}

var benefitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bsave (?:time|money|effort)\b`),
	regexp.MustCompile(`\bget (?:more|better|faster)\b`),
	regexp.MustCompile(`\bincrease (?:your|productivity|success)\b`),
	regexp.MustCompile(`\breduce (?:stress|time|effort)\b`),
	regexp.MustCompile(`\bimprove (?:your|health|life)\b`),
	regexp.MustCompile(`\blearn (?:how|to|the)\b`),
	regexp.MustCompile(`\bdiscover (?:the|how|why)\b`),
}

var valueIndicators = []string{
	"tips", "hacks", "tricks", "guide", "how to", "step by step", "tutorial",
	"learn", "discover", "find out", "reveal", "show you", "teach you",
	"help you", "save", "earn", "improve", "boost",
}

var ctaIndicators = []string{
	"comment", "like", "share", "save", "follow", "subscribe", "tag",
	"try this", "let me know", "tell me", "what do you think",
}

var urgencyWords = []string{"now", "today", "immediately", "quick", "don't wait"}

var shareabilityIndicators = []string{
	"tag someone", "send this to", "share with", "show this to",
	"everyone needs", "must see", "share if you", "tag if you",
}

var relatablePhrases = []string{"we all", "everyone", "you know", "happens to", "can relate"}

var conversationStarters = []string{
	"what do you think", "agree or disagree", "your experience",
	"comment below", "let me know", "tell me",
}

var storyIndicators = []string{"when i", "i remember", "happened to me", "my story", "i learned"}

var honestPhrases = []string{"honestly", "truth is", "i'll admit", "struggled with", "made mistakes"}

var trendingTerms = []string{"trending", "viral", "latest", "new", "hot", "popular"}

var seasonalTerms = map[time.Month][]string{
	time.January:   {"new year", "resolution", "fresh start", "january"},
	time.February:  {"valentine", "love", "february"},
	time.March:     {"spring", "march", "renewal"},
	time.April:     {"april", "easter", "spring"},
	time.May:       {"may", "mother", "spring"},
	time.June:      {"june", "summer", "father"},
	time.July:      {"july", "summer", "vacation"},
	time.August:    {"august", "summer", "back to school"},
	time.September: {"september", "fall", "autumn", "back to school"},
	time.October:   {"october", "halloween", "fall"},
	time.November:  {"november", "thanksgiving", "gratitude"},
	time.December:  {"december", "christmas", "holiday", "year end"},
}

var hashtagPattern = regexp.MustCompile(`#\w+`)

// Score evaluates script text against the nine-dimension rubric. The
// dimension sub-scores always sum exactly to the total.
func (v *ViralScorer) Score(text, topic string) ViralScore {
	lower := strings.ToLower(text)
	sections := script.ParseSections(text)

	dims := map[string]float64{}
	var recs []string

	addDim := func(name string, score float64, dimRecs []string) {
		if ceiling := v.weights[name]; score > ceiling {
			score = ceiling
		}
		dims[name] = score
		recs = append(recs, dimRecs...)
	}

	for _, dim := range []struct {
		name string
		fn   func() (float64, []string)
	}{
		{DimHookStrength, func() (float64, []string) { return v.scoreHook(sections.Hook) }},
		{DimEmotionalTrigger, func() (float64, []string) { return v.scoreEmotionalTriggers(lower) }},
		{DimCuriosityGap, func() (float64, []string) { return v.scoreCuriosityGap(lower) }},
		{DimValueProposition, func() (float64, []string) { return v.scoreValueProposition(lower) }},
		{DimCallToAction, func() (float64, []string) { return v.scoreCallToAction(sections.CTA) }},
		{DimHashtagStrategy, func() (float64, []string) { return v.scoreHashtags(sections.Hashtags) }},
		{DimTimingRelevance, func() (float64, []string) { return v.scoreTimingRelevance(lower) }},
		{DimShareability, func() (float64, []string) { return v.scoreShareability(lower) }},
		{DimAuthenticity, func() (float64, []string) { return v.scoreAuthenticity(lower) }},
	} {
		score, dimRecs := dim.fn()
		addDim(dim.name, score, dimRecs)
	}

	var total float64
	for _, score := range dims {
		total += score
	}

	return ViralScore{
		Total:           total,
		Grade:           GradeFor(total),
		Dimensions:      dims,
		Recommendations: recs,
	}
}

// GradeFor maps a 0-100 score onto a letter grade
func GradeFor(score float64) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "B+"
	case score >= 80:
		return "B"
	case score >= 75:
		return "C+"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func (v *ViralScorer) scoreHook(hook string) (float64, []string) {
	max := v.weights[DimHookStrength]
	if strings.TrimSpace(hook) == "" {
		return 0, []string{"Add a strong opening hook to grab attention"}
	}

	var score float64
	var recs []string
	lower := strings.ToLower(hook)

	if anyPatternMatches(viralHookPatterns, lower) {
		score += max * 0.4
	} else {
		recs = append(recs, "Use proven hook patterns (e.g. 'The secret that nobody tells you...')")
	}

	if strings.Contains(hook, "?") {
		score += max * 0.2
	}

	if countTriggerTypes(lower) > 0 {
		score += max * 0.3
	} else {
		recs = append(recs, "Add emotional triggers to your hook (urgency, curiosity, surprise)")
	}

	words := len(strings.Fields(hook))
	switch {
	case words >= 10 && words <= 20:
		score += max * 0.1
	case words < 10:
		recs = append(recs, "Hook is too short, aim for 10-20 words")
	default:
		recs = append(recs, "Hook is too long, keep it under 20 words")
	}

	return score, recs
}

func (v *ViralScorer) scoreEmotionalTriggers(lower string) (float64, []string) {
	max := v.weights[DimEmotionalTrigger]
	var recs []string

	found := map[string]bool{}
	for emotion, triggers := range emotionalTriggers {
		for _, trigger := range triggers {
			if strings.Contains(lower, trigger) {
				found[emotion] = true
				break
			}
		}
	}

	score := max * 0.8 * float64(len(found)) / float64(len(emotionalTriggers))

	highImpact := 0
	for _, emotion := range highImpactEmotions {
		if found[emotion] {
			highImpact++
		}
	}
	if highImpact > 0 {
		score += max * 0.2
	}

	if len(found) < 3 {
		recs = append(recs, "Include more emotional variety (curiosity, urgency, surprise)")
	}

	return score, recs
}

func (v *ViralScorer) scoreCuriosityGap(lower string) (float64, []string) {
	max := v.weights[DimCuriosityGap]
	var score float64
	var recs []string

	matches := 0
	for _, pattern := range curiosityPatterns {
		if pattern.MatchString(lower) {
			matches++
		}
	}
	if matches > 0 {
		fraction := float64(matches) * 0.2
		if fraction > 0.6 {
			fraction = 0.6
		}
		score += max * fraction
	} else {
		recs = append(recs, "Create curiosity gaps ('But here's what nobody tells you...')")
	}

	progression := 0
	for _, word := range []string{"first", "next", "then", "finally", "but", "however", "surprisingly"} {
		if strings.Contains(lower, word) {
			progression++
		}
	}
	if progression >= 2 {
		score += max * 0.2
	} else {
		recs = append(recs, "Use progression words (first, then, but) to build curiosity")
	}

	for _, indicator := range []string{"stay tuned", "keep watching", "wait for it", "but wait"} {
		if strings.Contains(lower, indicator) {
			score += max * 0.2
			break
		}
	}

	return score, recs
}

func (v *ViralScorer) scoreValueProposition(lower string) (float64, []string) {
	max := v.weights[DimValueProposition]
	var score float64
	var recs []string

	valueFound := 0
	for _, indicator := range valueIndicators {
		if strings.Contains(lower, indicator) {
			valueFound++
		}
	}
	if valueFound > 0 {
		fraction := float64(valueFound) * 0.15
		if fraction > 0.7 {
			fraction = 0.7
		}
		score += max * fraction
	} else {
		recs = append(recs, "Clearly state the value or benefit you're providing")
	}

	if anyPatternMatches(benefitPatterns, lower) {
		score += max * 0.3
	} else {
		recs = append(recs, "Mention specific benefits (save time, improve health)")
	}

	return score, recs
}

func (v *ViralScorer) scoreCallToAction(cta string) (float64, []string) {
	max := v.weights[DimCallToAction]
	if strings.TrimSpace(cta) == "" {
		return 0, []string{"Add a clear call-to-action to drive engagement"}
	}

	var score float64
	var recs []string
	lower := strings.ToLower(cta)

	found := 0
	for _, indicator := range ctaIndicators {
		if strings.Contains(lower, indicator) {
			found++
		}
	}
	if found > 0 {
		score += max * 0.5
	} else {
		recs = append(recs, "Add engagement CTAs (comment, like, share, save)")
	}

	if found >= 1 && found <= 3 {
		score += max * 0.3
	} else if found > 3 {
		recs = append(recs, "Too many CTAs, focus on 1-3 main actions")
	}

	urgent := false
	for _, word := range urgencyWords {
		if strings.Contains(lower, word) {
			urgent = true
			break
		}
	}
	if urgent {
		score += max * 0.2
	} else {
		recs = append(recs, "Add urgency to your CTA (try this now)")
	}

	return score, recs
}

func (v *ViralScorer) scoreHashtags(hashtags string) (float64, []string) {
	max := v.weights[DimHashtagStrategy]
	if strings.TrimSpace(hashtags) == "" {
		return 0, []string{"Add relevant hashtags to increase discoverability"}
	}

	var score float64
	var recs []string

	tags := hashtagPattern.FindAllString(hashtags, -1)
	count := len(tags)
	switch {
	case count >= 5 && count <= 20:
		score += max * 0.7
	case count > 0:
		score += max * 0.4
		recs = append(recs, "Aim for 5-20 relevant hashtags")
	default:
		recs = append(recs, "Hashtag section has no #tags")
	}

	trending := false
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)
		for _, indicator := range []string{"trend", "viral", "challenge"} {
			if strings.Contains(tagLower, indicator) {
				trending = true
			}
		}
	}
	if trending {
		score += max * 0.3
	} else {
		recs = append(recs, "Include trending hashtags for better reach")
	}

	return score, recs
}

func (v *ViralScorer) scoreTimingRelevance(lower string) (float64, []string) {
	max := v.weights[DimTimingRelevance]
	var score float64
	var recs []string
	now := v.now()

	if strings.Contains(lower, fmt.Sprintf("%d", now.Year())) {
		score += max * 0.3
	}

	for _, term := range seasonalTerms[now.Month()] {
		if strings.Contains(lower, term) {
			score += max * 0.4
			break
		}
	}

	trending := false
	for _, term := range trendingTerms {
		if strings.Contains(lower, term) {
			trending = true
			break
		}
	}
	if trending {
		score += max * 0.3
	} else {
		recs = append(recs, "Reference current trends or timing for relevance")
	}

	return score, recs
}

func (v *ViralScorer) scoreShareability(lower string) (float64, []string) {
	max := v.weights[DimShareability]
	var score float64
	var recs []string

	shared := false
	for _, indicator := range shareabilityIndicators {
		if strings.Contains(lower, indicator) {
			shared = true
			break
		}
	}
	if shared {
		score += max * 0.4
	} else {
		recs = append(recs, "Add explicit sharing encouragement (tag someone who needs this)")
	}

	for _, phrase := range relatablePhrases {
		if strings.Contains(lower, phrase) {
			score += max * 0.3
			break
		}
	}

	for _, starter := range conversationStarters {
		if strings.Contains(lower, starter) {
			score += max * 0.3
			break
		}
	}

	return score, recs
}

func (v *ViralScorer) scoreAuthenticity(lower string) (float64, []string) {
	max := v.weights[DimAuthenticity]
	var score float64
	var recs []string

	personal := false
	for _, pronoun := range []string{" i ", "my ", " me ", "myself"} {
		if strings.Contains(" "+lower+" ", pronoun) {
			personal = true
			break
		}
	}
	if personal {
		score += max * 0.5
	} else {
		recs = append(recs, "Add personal elements (I discovered, my experience)")
	}

	for _, indicator := range storyIndicators {
		if strings.Contains(lower, indicator) {
			score += max * 0.3
			break
		}
	}

	for _, phrase := range honestPhrases {
		if strings.Contains(lower, phrase) {
			score += max * 0.2
			break
		}
	}

	return score, recs
}

// countTriggerTypes returns how many emotional trigger categories appear
func countTriggerTypes(lower string) int {
	count := 0
	for _, triggers := range emotionalTriggers {
		for _, trigger := range triggers {
			if strings.Contains(lower, trigger) {
				count++
				break
			}
		}
	}
	return count
}

// anyPatternMatches reports whether any compiled pattern matches the text
func anyPatternMatches(patterns []*regexp.Regexp, text string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
