// ABOUTME: Ingestor adds example scripts to the vector index
// ABOUTME: Embeds the text and upserts it with source metadata
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harper/scriptwriter/internal/vector"
)

// Ingestor writes example scripts into the vector index so they can be
// retrieved as few-shot context during generation.
type Ingestor struct {
	embedder Embedder
	index    vector.Index
}

// NewIngestor creates an Ingestor backed by the given embedder and index
func NewIngestor(embedder Embedder, index vector.Index) *Ingestor {
	return &Ingestor{embedder: embedder, index: index}
}

// Ingest embeds the example text and stores it in the index. Returns the
// generated vector ID.
func (i *Ingestor) Ingest(ctx context.Context, text, source string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("example text is empty")
	}

	values, err := i.embedder.Embed(ctx, text)
	if err != nil {
		return "", fmt.Errorf("failed to embed example: %w", err)
	}

	id := uuid.New().String()
	metadata := map[string]string{"text": text}
	if source != "" {
		metadata["source"] = source
	}

	if err := i.index.Upsert(ctx, id, values, metadata); err != nil {
		return "", fmt.Errorf("failed to store example: %w", err)
	}

	return id, nil
}
