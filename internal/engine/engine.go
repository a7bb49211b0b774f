// ABOUTME: The generation loop: draft N attempts, score, select, polish
// ABOUTME: Guarantees the final script never regresses below the best draft
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harper/scriptwriter/internal/models"
	"github.com/harper/scriptwriter/internal/retrieval"
	"github.com/harper/scriptwriter/internal/score"
	"github.com/harper/scriptwriter/internal/script"
)

// Status is the lifecycle state of one generation request
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusGenerating Status = "GENERATING"
	StatusScoring    Status = "SCORING"
	StatusSelected   Status = "SELECTED"
	StatusPolishing  Status = "POLISHING"
	StatusRescoring  Status = "RESCORING"
	StatusFinalized  Status = "FINALIZED"
	StatusFailed     Status = "FAILED"
)

// Completer is the LLM call the engine depends on
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error)
}

// Retriever supplies similar example scripts for prompt grounding
type Retriever interface {
	Retrieve(ctx context.Context, topic string) ([]models.RetrievedExample, error)
}

// Historian persists the winning script record
type Historian interface {
	Save(ctx context.Context, record *models.ScriptRecord) error
}

// Options tune the generation loop
type Options struct {
	Attempts          int
	DraftTemperature  float32
	TemperatureStep   float32
	PolishTemperature float32
	MaxTokens         int
	SkipPolish        bool
	OnStateChange     func(Status)
}

// DefaultOptions returns the standard loop configuration
func DefaultOptions() Options {
	return Options{
		Attempts:          3,
		DraftTemperature:  0.7,
		TemperatureStep:   0.1,
		PolishTemperature: 0.5,
		MaxTokens:         1500,
	}
}

// GenerationFailedError reports that every attempt failed. Nothing is
// persisted when this is returned.
type GenerationFailedError struct {
	Topic    string
	Failures []error
}

func (e *GenerationFailedError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, err := range e.Failures {
		parts[i] = fmt.Sprintf("attempt %d: %v", i, err)
	}
	return fmt.Sprintf("all %d generation attempts failed for topic %q: %s",
		len(e.Failures), e.Topic, strings.Join(parts, "; "))
}

// Engine runs the draft-score-select-polish loop for one request at a time
type Engine struct {
	completer Completer
	retriever Retriever
	scorer    *score.Scorer
	history   Historian
	opts      Options
}

// New creates an Engine. The retriever and historian may be nil, in which
// case retrieval is skipped and records are not persisted. Temperatures are
// taken as given (0 is a valid deterministic setting); use DefaultOptions
// for the standard values.
func New(completer Completer, retriever Retriever, scorer *score.Scorer, history Historian, opts Options) *Engine {
	if opts.Attempts <= 0 {
		opts.Attempts = 3
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 1500
	}
	if scorer == nil {
		scorer = score.NewScorer()
	}
	return &Engine{
		completer: completer,
		retriever: retriever,
		scorer:    scorer,
		history:   history,
		opts:      opts,
	}
}

func (e *Engine) setState(status Status) {
	if e.opts.OnStateChange != nil {
		e.opts.OnStateChange(status)
	}
}

// Generate produces one final script for the persona and request. Retrieval
// failures degrade to an empty example list; the request only fails when
// every draft attempt fails.
func (e *Engine) Generate(ctx context.Context, persona *models.Persona, req *models.ContentRequest) (*models.ScriptRecord, error) {
	e.setState(StatusPending)

	if err := req.Validate(); err != nil {
		e.setState(StatusFailed)
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if persona == nil {
		e.setState(StatusFailed)
		return nil, fmt.Errorf("persona is required")
	}

	examples := e.retrieveExamples(ctx, req.Topic)

	attempts, err := e.runAttempts(ctx, persona, req, examples)
	if err != nil {
		e.setState(StatusFailed)
		return nil, err
	}

	winner := selectWinner(attempts, req)
	if winner == nil {
		e.setState(StatusFailed)
		return nil, &GenerationFailedError{Topic: req.Topic, Failures: attemptErrors(attempts)}
	}
	e.setState(StatusSelected)

	final := e.polish(ctx, persona, req, winner)

	// Cancellation discards completed attempts rather than persisting them
	if err := ctx.Err(); err != nil {
		e.setState(StatusFailed)
		return nil, err
	}

	record := &models.ScriptRecord{
		ID:        uuid.New().String(),
		PersonaID: persona.ID,
		Request:   *req,
		Text:      final.Text,
		Scores:    final.Scores,
		Polished:  final.Polished,
		Attempts:  len(attempts),
		CreatedAt: time.Now(),
	}

	if e.history != nil {
		if err := e.history.Save(ctx, record); err != nil {
			log.Printf("Warning: failed to persist script record: %v", err)
		}
	}

	e.setState(StatusFinalized)
	return record, nil
}

// retrieveExamples pulls examples for the topic, degrading to none on failure
func (e *Engine) retrieveExamples(ctx context.Context, topic string) []models.RetrievedExample {
	if e.retriever == nil {
		return nil
	}

	examples, err := e.retriever.Retrieve(ctx, topic)
	if err != nil {
		if errors.Is(err, retrieval.ErrUnavailable) {
			log.Printf("Warning: example index unavailable, generating without examples")
		} else {
			log.Printf("Warning: retrieval failed: %v", err)
		}
		return nil
	}
	return examples
}

// runAttempts drafts and scores up to Attempts candidates. A failed LLM
// call marks that attempt failed without aborting its siblings; context
// cancellation aborts the whole loop.
func (e *Engine) runAttempts(ctx context.Context, persona *models.Persona, req *models.ContentRequest, examples []models.RetrievedExample) ([]models.GenerationAttempt, error) {
	prompt := script.BuildDraftPrompt(persona, req, examples)
	attempts := make([]models.GenerationAttempt, 0, e.opts.Attempts)

	for i := 0; i < e.opts.Attempts; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.setState(StatusGenerating)

		temperature := e.opts.DraftTemperature + float32(i)*e.opts.TemperatureStep
		text, err := e.completer.Complete(ctx, script.SystemPrompt, prompt, temperature, e.opts.MaxTokens)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("Warning: attempt %d failed: %v", i, err)
			attempts = append(attempts, models.GenerationAttempt{Index: i, Err: err})
			continue
		}

		e.setState(StatusScoring)
		attempts = append(attempts, models.GenerationAttempt{
			Index:  i,
			Text:   text,
			Scores: e.scorer.Score(text, persona, req),
		})
	}

	return attempts, nil
}

// finalResult carries the outcome of the polish stage
type finalResult struct {
	Text     string
	Scores   models.ScoreBreakdown
	Polished bool
}

// polish runs the editorial pass on the winning draft only. A polish call
// failure or a score regression both fall back to the unpolished winner.
func (e *Engine) polish(ctx context.Context, persona *models.Persona, req *models.ContentRequest, winner *models.GenerationAttempt) finalResult {
	unpolished := finalResult{Text: winner.Text, Scores: winner.Scores}

	if e.opts.SkipPolish || ctx.Err() != nil {
		return unpolished
	}
	e.setState(StatusPolishing)

	prompt := script.BuildPolishPrompt(persona, req, winner.Text)
	polished, err := e.completer.Complete(ctx, script.PolishSystemPrompt, prompt, e.opts.PolishTemperature, e.opts.MaxTokens)
	if err != nil {
		log.Printf("Warning: polish pass failed, keeping unpolished winner: %v", err)
		return unpolished
	}

	e.setState(StatusRescoring)
	rescored := e.scorer.Score(polished, persona, req)
	if rescored.Quality < winner.Scores.Quality {
		log.Printf("Warning: polish regressed quality %.1f -> %.1f, keeping unpolished winner",
			winner.Scores.Quality, rescored.Quality)
		return unpolished
	}

	return finalResult{Text: polished, Scores: rescored, Polished: true}
}

// selectWinner picks the attempt with the highest quality score. Ties break
// to the smaller deviation from the target word count, then to the lowest
// ordinal index, so selection is reproducible regardless of execution order.
func selectWinner(attempts []models.GenerationAttempt, req *models.ContentRequest) *models.GenerationAttempt {
	target := req.TargetWordCount()
	var winner *models.GenerationAttempt

	for i := range attempts {
		candidate := &attempts[i]
		if candidate.Failed() {
			continue
		}
		if winner == nil || betterAttempt(candidate, winner, target) {
			winner = candidate
		}
	}
	return winner
}

// betterAttempt reports whether a should replace b as the current winner
func betterAttempt(a, b *models.GenerationAttempt, target int) bool {
	if a.Scores.Quality != b.Scores.Quality {
		return a.Scores.Quality > b.Scores.Quality
	}
	devA := absInt(a.WordCount() - target)
	devB := absInt(b.WordCount() - target)
	if devA != devB {
		return devA < devB
	}
	return a.Index < b.Index
}

// attemptErrors collects per-attempt failures for the terminal error
func attemptErrors(attempts []models.GenerationAttempt) []error {
	errs := make([]error, 0, len(attempts))
	for _, attempt := range attempts {
		errs = append(errs, attempt.Err)
	}
	return errs
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
