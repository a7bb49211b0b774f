// ABOUTME: OpenAI client for script generation, polishing, and embeddings
// ABOUTME: Wraps go-openai with bounded retries and a typed error taxonomy
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harper/scriptwriter/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
)

// Typed errors for the outbound-call taxonomy. Callers match with errors.Is.
var (
	ErrRateLimited          = errors.New("llm: rate limited")
	ErrTimeout              = errors.New("llm: request timed out")
	ErrInvalidResponse      = errors.New("llm: empty or malformed response")
	ErrEmbeddingUnavailable = errors.New("llm: embedding service unavailable")
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey         string
	ChatModel      string
	EmbeddingModel openai.EmbeddingModel
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// Client wraps the OpenAI API client with retry logic. Construct once at
// process start and pass it to whatever needs it; there is no global instance.
type Client struct {
	api            *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	timeout        time.Duration
	maxRetries     int
	retryDelay     time.Duration
}

// NewClient creates a new OpenAI client with the given configuration
func NewClient(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	chatModel := config.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	embeddingModel := config.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		api:            openai.NewClient(config.APIKey),
		chatModel:      chatModel,
		embeddingModel: embeddingModel,
		timeout:        timeout,
		maxRetries:     config.MaxRetries,
		retryDelay:     config.RetryDelay,
	}, nil
}

// Complete sends a system+user prompt pair and returns the generated text.
// Transient failures (rate limit, timeout) are retried with exponential
// backoff up to the configured ceiling; an empty or blank completion is
// classified ErrInvalidResponse and retried at most once.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error) {
	var lastErr error
	invalidRetries := 0

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.api.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		})
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			lastErr = classifyError(err)
			continue
		}

		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			lastErr = ErrInvalidResponse
			invalidRetries++
			if invalidRetries > 1 {
				break
			}
			continue
		}

		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// Embed generates an embedding vector for the given text
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.api.CreateEmbeddings(callCtx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: c.embeddingModel,
		})
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		if len(resp.Data) == 0 {
			lastErr = fmt.Errorf("no embeddings returned")
			continue
		}

		return resp.Data[0].Embedding, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, lastErr)
}

// classifyError maps transport/API errors onto the typed taxonomy
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case apiErr.HTTPStatusCode >= 500:
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}
