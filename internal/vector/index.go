// ABOUTME: Vector index abstraction over Pinecone and the Charm KV fallback
// ABOUTME: Defines the Match result type shared by all index backends
package vector

import "context"

// DefaultDimension is the embedding dimension for OpenAI text-embedding-3-small
const DefaultDimension = 1536

// Match is a single similarity-search hit
type Match struct {
	ID       string            `json:"id"`
	Score    float64           `json:"score"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Index stores embedding vectors and answers nearest-neighbor queries.
// Implementations must return Query results ordered by descending score.
type Index interface {
	Upsert(ctx context.Context, id string, values []float32, metadata map[string]string) error
	Query(ctx context.Context, values []float32, topK int) ([]Match, error)
}
