// ABOUTME: Retrieval of similar example scripts for prompt grounding
// ABOUTME: Embeds the topic and queries the vector index, degrading cleanly
package retrieval

import (
	"context"
	"errors"
	"fmt"

	"github.com/harper/scriptwriter/internal/models"
	"github.com/harper/scriptwriter/internal/vector"
)

// DefaultTopK is the default number of examples pulled per request
const DefaultTopK = 3

// ErrUnavailable reports that retrieval could not be performed. Callers
// treat this as a signal to continue without examples, not as a hard failure.
var ErrUnavailable = errors.New("retrieval: example index unavailable")

// Embedder turns text into an embedding vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Retriever finds stored example scripts similar to a topic
type Retriever struct {
	embedder Embedder
	index    vector.Index
	topK     int
}

// NewRetriever creates a Retriever. topK <= 0 uses DefaultTopK.
func NewRetriever(embedder Embedder, index vector.Index, topK int) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{embedder: embedder, index: index, topK: topK}
}

// Retrieve returns up to topK examples ordered by descending similarity.
// Any embedding or index failure is wrapped in ErrUnavailable.
func (r *Retriever) Retrieve(ctx context.Context, topic string) ([]models.RetrievedExample, error) {
	queryVector, err := r.embedder.Embed(ctx, topic)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	matches, err := r.index.Query(ctx, queryVector, r.topK)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	examples := make([]models.RetrievedExample, 0, len(matches))
	for _, m := range matches {
		text := m.Metadata["text"]
		if text == "" {
			continue
		}
		examples = append(examples, models.RetrievedExample{
			Text:       text,
			Similarity: m.Score,
			Source:     m.Metadata["source"],
		})
	}
	return examples, nil
}
