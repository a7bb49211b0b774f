// ABOUTME: Tests for example ingestion into the vector index
// ABOUTME: Verifies embedding, metadata, and failure handling
package retrieval

import (
	"context"
	"errors"
	"testing"
)

type recordingIndex struct {
	fakeIndex
	lastID       string
	lastMetadata map[string]string
}

func (r *recordingIndex) Upsert(ctx context.Context, id string, values []float32, metadata map[string]string) error {
	r.lastID = id
	r.lastMetadata = metadata
	return nil
}

func TestIngestor_Ingest(t *testing.T) {
	idx := &recordingIndex{}
	ing := NewIngestor(&fakeEmbedder{vec: []float32{0.1, 0.2}}, idx)

	id, err := ing.Ingest(context.Background(), "HOOK: a great example", "tiktok")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if id == "" || id != idx.lastID {
		t.Errorf("returned ID %q does not match stored ID %q", id, idx.lastID)
	}
	if idx.lastMetadata["text"] != "HOOK: a great example" {
		t.Errorf("text metadata = %q", idx.lastMetadata["text"])
	}
	if idx.lastMetadata["source"] != "tiktok" {
		t.Errorf("source metadata = %q", idx.lastMetadata["source"])
	}
}

func TestIngestor_EmptyText(t *testing.T) {
	ing := NewIngestor(&fakeEmbedder{vec: []float32{1}}, &recordingIndex{})
	if _, err := ing.Ingest(context.Background(), "   ", ""); err == nil {
		t.Error("Ingest should reject empty text")
	}
}

func TestIngestor_EmbedFailure(t *testing.T) {
	ing := NewIngestor(&fakeEmbedder{err: errors.New("down")}, &recordingIndex{})
	if _, err := ing.Ingest(context.Background(), "some text", ""); err == nil {
		t.Error("Ingest should propagate embed failure")
	}
}
