// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to generate scripts via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/scriptwriter/internal/engine"
	"github.com/harper/scriptwriter/internal/mcp"
	"github.com/harper/scriptwriter/internal/persona"
	"github.com/harper/scriptwriter/internal/retrieval"
	"github.com/harper/scriptwriter/internal/score"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs Scriptwriter as an MCP (Model Context Protocol) server, enabling
LLM agents like Claude to create personas and generate scripts via stdio.

Configure in Claude Desktop's config file to enable script tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by Claude Desktop)
  scriptwriter mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "scriptwriter": {
  #       "command": "scriptwriter",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - generation and embeddings will not work")
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}

	personas, err := persona.NewStore(persona.DefaultDataDir(), client)
	if err != nil {
		return fmt.Errorf("failed to open persona store: %w", err)
	}

	index, cleanupIndex, err := newIndex(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize vector index: %w", err)
	}
	defer cleanupIndex()

	retriever := retrieval.NewRetriever(client, index, cfg.RetrievalTopK)
	ingestor := retrieval.NewIngestor(client, index)

	history, cleanupDB, err := openHistory()
	if err != nil {
		return err
	}
	defer cleanupDB()

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

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Scriptwriter MCP server starting on stdio...")
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}

	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
