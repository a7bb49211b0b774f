// ABOUTME: MCP tool definitions and registration for the scriptwriter server
// ABOUTME: Defines JSON schemas for all 6 MCP tools
package mcp

import (
	"github.com/harper/scriptwriter/internal/engine"
	"github.com/harper/scriptwriter/internal/persona"
	"github.com/harper/scriptwriter/internal/retrieval"
	"github.com/harper/scriptwriter/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, eng *engine.Engine, personas *persona.Store, retriever *retrieval.Retriever, ingestor *retrieval.Ingestor, history *sqlite.HistoryStore) *Handlers {
	handlers := &Handlers{
		engine:    eng,
		personas:  personas,
		retriever: retriever,
		ingestor:  ingestor,
		history:   history,
	}

	// 1. generate_script - Generate a scored short-form video script
	server.AddTool(mcp.Tool{
		Name:        "generate_script",
		Description: "Generate a short-form video script for a persona. Runs multiple drafts, scores them for quality, personalization, and viral potential, then polishes the winner.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"persona_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the persona to write as",
				},
				"topic": map[string]interface{}{
					"type":        "string",
					"description": "Topic for the script",
				},
				"duration": map[string]interface{}{
					"type":        "number",
					"description": "Video duration in seconds: 15, 30, 45, 60, or 90 (default: 30)",
					"default":     30,
				},
				"context": map[string]interface{}{
					"type":        "string",
					"description": "Optional additional context for the script",
				},
				"content_type": map[string]interface{}{
					"type":        "string",
					"description": "Content style: educational, inspirational, entertainment, story, or viral",
				},
			},
			Required: []string{"persona_id", "topic"},
		},
	}, handlers.GenerateScript)

	// 2. create_persona - Create a persona from a creator's story
	server.AddTool(mcp.Tool{
		Name:        "create_persona",
		Description: "Create a creator persona from their story. Extracts voice, audience, and content patterns, optionally learning hook and CTA styles from example scripts.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Creator's name",
				},
				"story": map[string]interface{}{
					"type":        "string",
					"description": "The creator's story: who they are, what they make content about, and for whom",
				},
				"examples": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional example scripts to learn hook and CTA patterns from",
				},
			},
			Required: []string{"name", "story"},
		},
	}, handlers.CreatePersona)

	// 3. list_personas - List all stored personas
	server.AddTool(mcp.Tool{
		Name:        "list_personas",
		Description: "List all stored personas with their voice style and expertise.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListPersonas)

	// 4. search_examples - Search the example index by topic
	server.AddTool(mcp.Tool{
		Name:        "search_examples",
		Description: "Search the example script index for scripts semantically similar to a topic.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": map[string]interface{}{
					"type":        "string",
					"description": "Topic to search for",
				},
			},
			Required: []string{"topic"},
		},
	}, handlers.SearchExamples)

	// 5. ingest_example - Add an example script to the index
	server.AddTool(mcp.Tool{
		Name:        "ingest_example",
		Description: "Add an example script to the retrieval index so future generations can use it as few-shot context.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "The example script text",
				},
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Optional source label (e.g. 'tiktok', 'reels')",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.IngestExample)

	// 6. get_history - Retrieve past generated scripts
	server.AddTool(mcp.Tool{
		Name:        "get_history",
		Description: "Retrieve previously generated scripts with their frozen scores, newest first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"persona_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional persona ID to filter by",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of records to return (default: 10)",
					"default":     10,
				},
			},
		},
	}, handlers.GetHistory)

	return handlers
}
