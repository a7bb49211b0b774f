// ABOUTME: Shared pipeline construction for CLI commands
// ABOUTME: Builds the LLM client, vector index, retriever, and history store from config
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"github.com/harper/scriptwriter/internal/charm"
	"github.com/harper/scriptwriter/internal/config"
	"github.com/harper/scriptwriter/internal/llm"
	"github.com/harper/scriptwriter/internal/retrieval"
	"github.com/harper/scriptwriter/internal/storage/sqlite"
	"github.com/harper/scriptwriter/internal/vector"
)

// loadConfig loads .env and the environment configuration
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.Load()
}

// newLLMClient builds the OpenAI client from config
func newLLMClient(cfg *config.Config) (*llm.Client, error) {
	return llm.NewClient(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
}

// newIndex builds the vector index: Pinecone when configured, charm KV
// otherwise. The returned cleanup function must be called when done.
func newIndex(cfg *config.Config) (vector.Index, func(), error) {
	if cfg.UsePinecone() {
		idx, err := vector.NewPineconeIndex(&vector.PineconeConfig{
			APIKey:  cfg.PineconeAPIKey,
			Host:    cfg.PineconeHost,
			Timeout: cfg.Timeout,
		}, cfg.VectorDimension)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing pinecone index: %w", err)
		}
		return idx, func() {}, nil
	}

	client, err := charm.NewClient(&charm.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing charm client: %w", err)
	}
	cleanup := func() { _ = client.Close() }
	return vector.NewCharmIndex(client, cfg.VectorDimension), cleanup, nil
}

// newRetriever builds the embedder-backed example retriever
func newRetriever(cfg *config.Config, client *llm.Client) (*retrieval.Retriever, func(), error) {
	index, cleanup, err := newIndex(cfg)
	if err != nil {
		return nil, nil, err
	}
	return retrieval.NewRetriever(client, index, cfg.RetrievalTopK), cleanup, nil
}

// openHistory opens the script history database at the default path
func openHistory() (*sqlite.HistoryStore, func(), error) {
	db, err := sqlite.Open(sqlite.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	cleanup := func() { _ = db.Close() }
	return sqlite.NewHistoryStore(db), cleanup, nil
}
