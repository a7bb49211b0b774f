// ABOUTME: MCP tool handler implementations for the scriptwriter server
// ABOUTME: Contains handler implementations with proper error handling for all 6 tools
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/harper/scriptwriter/internal/engine"
	"github.com/harper/scriptwriter/internal/models"
	"github.com/harper/scriptwriter/internal/persona"
	"github.com/harper/scriptwriter/internal/retrieval"
	"github.com/harper/scriptwriter/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	engine    *engine.Engine
	personas  *persona.Store
	retriever *retrieval.Retriever
	ingestor  *retrieval.Ingestor
	history   *sqlite.HistoryStore
}

// GenerateScript handles the generate_script tool
func (h *Handlers) GenerateScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personaID, err := request.RequireString("persona_id")
	if err != nil {
		return mcp.NewToolResultError("persona_id argument is required and must be a string"), nil
	}
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic argument is required and must be a string"), nil
	}

	p, err := h.personas.Get(personaID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("persona not found: %v", err)), nil
	}

	req := &models.ContentRequest{
		Topic:       topic,
		Context:     request.GetString("context", ""),
		Duration:    request.GetInt("duration", 30),
		ContentType: request.GetString("content_type", ""),
	}
	if err := req.Validate(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid request: %v", err)), nil
	}

	record, err := h.engine.Generate(ctx, p, req)
	if err != nil {
		var genErr *engine.GenerationFailedError
		if errors.As(err, &genErr) {
			return mcp.NewToolResultError(fmt.Sprintf("all generation attempts failed: %v", genErr)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"script_id":       record.ID,
		"text":            record.Text,
		"quality":         record.Scores.Quality,
		"personalization": record.Scores.Personalization,
		"viral_score":     record.Scores.Viral,
		"viral_grade":     record.Scores.ViralGrade,
		"recommendations": record.Scores.Recommendations,
		"polished":        record.Polished,
		"attempts":        record.Attempts,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// CreatePersona handles the create_persona tool
func (h *Handlers) CreatePersona(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}
	story, err := request.RequireString("story")
	if err != nil {
		return mcp.NewToolResultError("story argument is required and must be a string"), nil
	}

	var examples []string
	if args, ok := request.Params.Arguments.(map[string]any); ok {
		if raw, exists := args["examples"]; exists {
			if arr, ok := raw.([]interface{}); ok {
				for _, item := range arr {
					if str, ok := item.(string); ok {
						examples = append(examples, str)
					}
				}
			}
		}
	}

	p, err := h.personas.Create(ctx, name, story, examples)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("persona creation failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"persona_id":      p.ID,
		"name":            p.Name,
		"voice_style":     p.VoiceStyle,
		"expertise":       p.Expertise,
		"target_audience": p.TargetAudience,
		"hook_patterns":   p.HookPatterns,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListPersonas handles the list_personas tool
func (h *Handlers) ListPersonas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all, err := h.personas.List()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list personas: %v", err)), nil
	}

	personas := make([]map[string]interface{}, 0, len(all))
	for _, p := range all {
		personas = append(personas, map[string]interface{}{
			"persona_id":  p.ID,
			"name":        p.Name,
			"voice_style": p.VoiceStyle,
			"expertise":   p.Expertise,
			"created_at":  p.CreatedAt.Format(time.RFC3339),
		})
	}

	response := map[string]interface{}{
		"personas": personas,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchExamples handles the search_examples tool
func (h *Handlers) SearchExamples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic argument is required and must be a string"), nil
	}

	examples, err := h.retriever.Retrieve(ctx, topic)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("example search failed: %v", err)), nil
	}

	results := make([]map[string]interface{}, 0, len(examples))
	for _, ex := range examples {
		results = append(results, map[string]interface{}{
			"text":       ex.Text,
			"similarity": ex.Similarity,
			"source":     ex.Source,
		})
	}

	response := map[string]interface{}{
		"examples": results,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// IngestExample handles the ingest_example tool
func (h *Handlers) IngestExample(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	source := request.GetString("source", "")

	id, err := h.ingestor.Ingest(ctx, text, source)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"example_id": id,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetHistory handles the get_history tool
func (h *Handlers) GetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personaID := request.GetString("persona_id", "")
	limit := request.GetInt("limit", 10)

	records, err := h.history.List(ctx, personaID, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load history: %v", err)), nil
	}

	scripts := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		scripts = append(scripts, map[string]interface{}{
			"script_id":   record.ID,
			"persona_id":  record.PersonaID,
			"topic":       record.Request.Topic,
			"duration":    record.Request.Duration,
			"text":        record.Text,
			"quality":     record.Scores.Quality,
			"viral_score": record.Scores.Viral,
			"viral_grade": record.Scores.ViralGrade,
			"polished":    record.Polished,
			"created_at":  record.CreatedAt.Format(time.RFC3339),
		})
	}

	response := map[string]interface{}{
		"scripts": scripts,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
