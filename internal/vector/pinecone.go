// ABOUTME: Pinecone index client speaking the data-plane REST API directly
// ABOUTME: Covers the two endpoints the pipeline needs, query and upsert
package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PineconeConfig holds connection settings for a Pinecone index
type PineconeConfig struct {
	APIKey  string
	Host    string // index host URL, e.g. https://my-index-abc123.svc.pinecone.io
	Timeout time.Duration
}

// PineconeIndex talks to a Pinecone serverless index over HTTPS
type PineconeIndex struct {
	apiKey    string
	host      string
	http      *http.Client
	dimension int
}

// NewPineconeIndex creates a Pinecone-backed index. Dimension 0 disables
// dimension validation on upsert.
func NewPineconeIndex(cfg *PineconeConfig, dimension int) (*PineconeIndex, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("pinecone API key is required")
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("pinecone index host is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PineconeIndex{
		apiKey:    cfg.APIKey,
		host:      cfg.Host,
		http:      &http.Client{Timeout: timeout},
		dimension: dimension,
	}, nil
}

type pineconeVector struct {
	ID       string            `json:"id"`
	Values   []float32         `json:"values"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type upsertRequest struct {
	Vectors []pineconeVector `json:"vectors"`
}

type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []struct {
		ID       string            `json:"id"`
		Score    float64           `json:"score"`
		Metadata map[string]string `json:"metadata"`
	} `json:"matches"`
}

// Upsert writes one vector with its metadata to the index
func (p *PineconeIndex) Upsert(ctx context.Context, id string, values []float32, metadata map[string]string) error {
	if p.dimension > 0 && len(values) != p.dimension {
		return fmt.Errorf("invalid embedding dimension: expected %d, got %d", p.dimension, len(values))
	}

	body := upsertRequest{Vectors: []pineconeVector{{ID: id, Values: values, Metadata: metadata}}}
	if err := p.post(ctx, "/vectors/upsert", body, nil); err != nil {
		return fmt.Errorf("pinecone upsert: %w", err)
	}
	return nil
}

// Query returns the topK nearest vectors with metadata, ordered by score
func (p *PineconeIndex) Query(ctx context.Context, values []float32, topK int) ([]Match, error) {
	var resp queryResponse
	body := queryRequest{Vector: values, TopK: topK, IncludeMetadata: true}
	if err := p.post(ctx, "/query", body, &resp); err != nil {
		return nil, fmt.Errorf("pinecone query: %w", err)
	}

	matches := make([]Match, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		matches = append(matches, Match{ID: m.ID, Score: m.Score, Metadata: m.Metadata})
	}
	return matches, nil
}

func (p *PineconeIndex) post(ctx context.Context, path string, body, dest interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Api-Key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
