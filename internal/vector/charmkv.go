// ABOUTME: Charm KV backed vector index with cosine similarity search
// ABOUTME: Local fallback used when no Pinecone index is configured
package vector

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/harper/scriptwriter/internal/charm"
)

// kvStore is the slice of the charm client the index needs
type kvStore interface {
	SetJSON(key string, value interface{}) error
	GetJSON(key string, dest interface{}) error
	ListKeys(prefix string) ([]string, error)
}

// storedVector is the KV record for one indexed example
type storedVector struct {
	ID        string            `json:"id"`
	Values    []float32         `json:"values"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// CharmIndex stores vectors in Charm KV and scans them with cosine similarity.
// Fine for corpora up to a few thousand examples; beyond that use Pinecone.
type CharmIndex struct {
	kv        kvStore
	dimension int
}

// NewCharmIndex creates a Charm-backed index. Dimension 0 disables
// dimension validation on upsert.
func NewCharmIndex(kv kvStore, dimension int) *CharmIndex {
	return &CharmIndex{kv: kv, dimension: dimension}
}

// Upsert stores a vector under the example prefix
func (c *CharmIndex) Upsert(ctx context.Context, id string, values []float32, metadata map[string]string) error {
	if c.dimension > 0 && len(values) != c.dimension {
		return fmt.Errorf("invalid embedding dimension: expected %d, got %d", c.dimension, len(values))
	}

	rec := storedVector{
		ID:        id,
		Values:    values,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
	return c.kv.SetJSON(charm.ExampleKey(id), rec)
}

// Query scans all stored vectors and returns the topK by cosine similarity
func (c *CharmIndex) Query(ctx context.Context, values []float32, topK int) ([]Match, error) {
	keys, err := c.kv.ListKeys(charm.ExamplePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list example keys: %w", err)
	}

	var matches []Match
	for _, key := range keys {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var rec storedVector
		if err := c.kv.GetJSON(key, &rec); err != nil {
			continue
		}

		matches = append(matches, Match{
			ID:       rec.ID,
			Score:    cosineSimilarity(values, rec.Values),
			Metadata: rec.Metadata,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
