package modelrunner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createStreamingServer creates a test server that sends raw OpenAI-style chunk payloads
func createStreamingServer(t *testing.T, payloads []string, inspect func(ChatRequest)) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var req ChatRequest
			require.NoError(t, json.Unmarshal(body, &req))
			inspect(req)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)

		flusher := w.(http.Flusher)
		for _, p := range payloads {
			fmt.Fprintf(w, "data: %s\n\n", p) //nolint:errcheck
			flusher.Flush()
		}
		fmt.Fprintf(w, "data: [DONE]\n\n") //nolint:errcheck
		flusher.Flush()
	}))
}

func TestAssistantClient_StreamCompletion(t *testing.T) {
	req := domain.CompletionRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRole_System, Content: common.Ptr("be helpful")},
			{Role: domain.ChatRole_User, Content: common.Ptr("status of chiller 1")},
		},
	}

	tests := map[string]struct {
		payloads       []string
		expectedChunks []domain.CompletionChunk
	}{
		"text-and-null-content": {
			payloads: []string{
				`{"choices":[{"delta":{"role":"assistant","content":null}}]}`,
				`{"choices":[{"delta":{"content":"Hello"}}]}`,
				`{"choices":[{"delta":{},"finish_reason":"stop"}]}`,
				`{"choices":[],"usage":{"prompt_tokens":12,"completion_tokens":3,"total_tokens":15}}`,
			},
			expectedChunks: []domain.CompletionChunk{
				{Choices: []domain.CompletionChoice{{}}},
				{Choices: []domain.CompletionChoice{{Delta: domain.CompletionDelta{Content: common.Ptr("Hello")}}}},
				{Choices: []domain.CompletionChoice{{FinishReason: domain.FinishReason_Stop}}},
				{Choices: []domain.CompletionChoice{}, Usage: &domain.TokenUsage{PromptTokens: 12, CompletionTokens: 3}},
			},
		},
		"tool-call-fragments": {
			payloads: []string{
				`{"choices":[{"delta":{"tool_calls":[{"index":0,"id":"call_1","type":"function","function":{"name":"get_chiller_status","arguments":""}}]}}]}`,
				`{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"{\"chiller_id\":"}}]}}]}`,
				`{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"chiller_1\"}"}}]}}]}`,
				`{"choices":[{"delta":{},"finish_reason":"tool_calls"}]}`,
			},
			expectedChunks: []domain.CompletionChunk{
				{Choices: []domain.CompletionChoice{{Delta: domain.CompletionDelta{ToolCalls: []domain.ToolCallDelta{{ID: "call_1", Name: "get_chiller_status"}}}}}},
				{Choices: []domain.CompletionChoice{{Delta: domain.CompletionDelta{ToolCalls: []domain.ToolCallDelta{{Arguments: `{"chiller_id":`}}}}}},
				{Choices: []domain.CompletionChoice{{Delta: domain.CompletionDelta{ToolCalls: []domain.ToolCallDelta{{Arguments: `"chiller_1"}`}}}}}},
				{Choices: []domain.CompletionChoice{{FinishReason: domain.FinishReason_ToolCalls}}},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := createStreamingServer(t, tt.payloads, nil)
			defer server.Close()

			adapter := NewAssistantClientAdapter(NewCompletionsClient(server.URL, "", server.Client()), "ai/qwen3")

			var chunks []domain.CompletionChunk
			err := adapter.StreamCompletion(context.Background(), req, func(chunk domain.CompletionChunk) error {
				chunks = append(chunks, chunk)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedChunks, chunks)
		})
	}
}

func TestAssistantClient_StreamCompletion_Request(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{"chiller_id": {Type: "string"}},
		Required:   []string{"chiller_id"},
	}
	req := domain.CompletionRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRole_User, Content: common.Ptr("status?")},
			{Role: domain.ChatRole_Assistant, ToolCalls: []domain.ToolCall{{ID: "call_1", Name: "get_chiller_status", Arguments: `{"chiller_id":"chiller_1"}`}}},
			{Role: domain.ChatRole_Tool, ToolCallID: "call_1", Content: common.Ptr(`{"status":"on"}`)},
		},
		Tools: []domain.ToolDefinition{{Name: "get_chiller_status", Description: "Get chiller status", InputSchema: schema}},
	}

	server := createStreamingServer(t, nil, func(got ChatRequest) {
		assert.Equal(t, "ai/qwen3", got.Model)
		assert.True(t, got.Stream)
		require.NotNil(t, got.StreamOptions)
		assert.True(t, got.StreamOptions.IncludeUsage)

		require.Len(t, got.Messages, 3)
		assert.Nil(t, got.Messages[1].Content)
		assert.Equal(t, "function", got.Messages[1].ToolCalls[0].Type)
		assert.Equal(t, "get_chiller_status", got.Messages[1].ToolCalls[0].Function.Name)
		assert.Equal(t, "call_1", got.Messages[2].ToolCallID)

		require.Len(t, got.Tools, 1)
		assert.Equal(t, "get_chiller_status", got.Tools[0].Function.Name)
		assert.Equal(t, []string{"chiller_id"}, got.Tools[0].Function.Parameters.Required)
	})
	defer server.Close()

	adapter := NewAssistantClientAdapter(NewCompletionsClient(server.URL, "", server.Client()), "ai/qwen3")
	err := adapter.StreamCompletion(context.Background(), req, func(domain.CompletionChunk) error { return nil })
	assert.NoError(t, err)
}

func TestInitAssistantClient_Initialize(t *testing.T) {
	tests := map[string]struct {
		provider       string
		expectResolved bool
	}{
		"selected":     {provider: "modelrunner", expectResolved: true},
		"not-selected": {provider: "azure", expectResolved: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			depend.ClearContainer()
			t.Cleanup(depend.ClearContainer)

			init := InitAssistantClient{
				Logger:     zerolog.Nop(),
				HttpClient: http.DefaultClient,
				Provider:   tt.provider,
				ModelHost:  "http://localhost:12434",
				Model:      "ai/qwen3",
				APIKey:     "-",
			}
			_, err := init.Initialize(context.Background())
			require.NoError(t, err)

			_, err = depend.Resolve[domain.Assistant]()
			assert.Equal(t, tt.expectResolved, err == nil)
		})
	}
}
