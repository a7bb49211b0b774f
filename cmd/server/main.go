// ABOUTME: Main entry point for the standalone scriptwriter MCP server with stdio transport
// ABOUTME: Initializes the LLM client, stores, engine, and MCP server with all tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"github.com/harper/scriptwriter/internal/charm"
	"github.com/harper/scriptwriter/internal/config"
	"github.com/harper/scriptwriter/internal/engine"
	"github.com/harper/scriptwriter/internal/llm"
	"github.com/harper/scriptwriter/internal/mcp"
	"github.com/harper/scriptwriter/internal/persona"
	"github.com/harper/scriptwriter/internal/retrieval"
	"github.com/harper/scriptwriter/internal/score"
	"github.com/harper/scriptwriter/internal/storage/sqlite"
	"github.com/harper/scriptwriter/internal/vector"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - generation and embeddings will not work")
	}

	client, err := llm.NewClient(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}

	personas, err := persona.NewStore(persona.DefaultDataDir(), client)
	if err != nil {
		log.Fatalf("Failed to open persona store: %v", err)
	}

	// Vector index: Pinecone when configured, charm KV otherwise
	var index vector.Index
	if cfg.UsePinecone() {
		index, err = vector.NewPineconeIndex(&vector.PineconeConfig{
			APIKey:  cfg.PineconeAPIKey,
			Host:    cfg.PineconeHost,
			Timeout: cfg.Timeout,
		}, cfg.VectorDimension)
		if err != nil {
			log.Fatalf("Failed to initialize Pinecone index: %v", err)
		}
	} else {
		charmClient, err := charm.NewClient(&charm.Config{
			Host:     cfg.CharmHost,
			DBName:   cfg.CharmDBName,
			AutoSync: cfg.AutoSync,
		})
		if err != nil {
			log.Fatalf("Failed to initialize charm client: %v", err)
		}
		defer func() { _ = charmClient.Close() }()
		index = vector.NewCharmIndex(charmClient, cfg.VectorDimension)
	}

	retriever := retrieval.NewRetriever(client, index, cfg.RetrievalTopK)
	ingestor := retrieval.NewIngestor(client, index)

	db, err := sqlite.Open(sqlite.DefaultDBPath())
	if err != nil {
		log.Fatalf("Failed to open history database: %v", err)
	}
	defer func() { _ = db.Close() }()
	history := sqlite.NewHistoryStore(db)

	eng := engine.New(client, retriever, score.NewScorer(), history, engine.Options{
		Attempts:          cfg.Attempts,
		DraftTemperature:  float32(cfg.DraftTemperature),
		TemperatureStep:   0.1,
		PolishTemperature: float32(cfg.PolishTemperature),
		MaxTokens:         cfg.MaxTokens,
	})

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Scriptwriter",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, eng, personas, retriever, ingestor, history)

	// Start server with stdio transport
	log.Println("Scriptwriter MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
