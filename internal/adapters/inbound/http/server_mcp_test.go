package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMCPServer(t *testing.T) {
	registry := domain.NewMockToolRegistry(t)
	registry.EXPECT().List().Return([]domain.ToolDefinition{
		{
			Name:        "get_chiller_status",
			Description: "Get the latest metrics of a chiller",
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{"chiller_id": {Type: "string"}},
				Required:   []string{"chiller_id"},
			},
		},
		{Name: "get_all_chillers", Description: "Get the latest metrics of every chiller"},
	})
	registry.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(call domain.ToolCall) bool {
			return call.Name == "get_chiller_status"
		})).
		Return(json.RawMessage(`{"chiller_1_status":1}`), nil)
	registry.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(call domain.ToolCall) bool {
			return call.Name == "get_all_chillers"
		})).
		Return(nil, domain.NewUnavailableErr("telemetry store unavailable", nil))

	ctx := context.Background()
	server := newMCPServer(registry, zerolog.Nop())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	_, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck

	listed, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(listed.Tools))
	for _, tool := range listed.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"get_chiller_status", "get_all_chillers"}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_chiller_status",
		Arguments: map[string]any{"chiller_id": "chiller_1"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.JSONEq(t, `{"chiller_1_status":1}`, res.Content[0].(*mcp.TextContent).Text)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{Name: "get_all_chillers", Arguments: map[string]any{}})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.JSONEq(t, `{"error":"telemetry store unavailable"}`, res.Content[0].(*mcp.TextContent).Text)
}
