package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

const mcpServerName = "chillerplant"

// newMCPServer exposes the advertised tools of the registry as MCP tools.
func newMCPServer(registry domain.ToolRegistry, logger zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: mcpServerName, Version: "v1"}, nil)
	for _, def := range registry.List() {
		schema := def.InputSchema
		if schema == nil {
			schema = &jsonschema.Schema{Type: "object"}
		}
		server.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: schema,
		}, mcpToolHandler(registry, logger))
	}
	return server
}

func mcpToolHandler(registry domain.ToolRegistry, logger zerolog.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		call := domain.ToolCall{
			Name:      req.Params.Name,
			Arguments: string(req.Params.Arguments),
		}
		result, err := registry.Dispatch(ctx, call)
		if err != nil {
			logger.Warn().Err(err).Str("tool", call.Name).Msg("MCP: tool call failed")
			msg, _ := json.Marshal(map[string]string{"error": err.Error()})
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: string(msg)}},
				IsError: true,
			}, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(result)}},
		}, nil
	}
}

func newMCPHandler(registry domain.ToolRegistry, logger zerolog.Logger) http.Handler {
	server := newMCPServer(registry, logger)
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
