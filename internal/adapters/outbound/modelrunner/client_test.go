package modelrunner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionsClient_StreamCompletions(t *testing.T) {
	validReq := ChatRequest{
		Model:    "ai/qwen3",
		Messages: []ChatMessage{{Role: "user", Content: common.Ptr("hi")}},
	}

	tests := map[string]struct {
		req            ChatRequest
		handler        http.HandlerFunc
		expectErr      string
		expectedChunks int
	}{
		"streams-until-done": {
			req: validReq,
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))

				body, _ := io.ReadAll(r.Body)
				var got map[string]any
				_ = json.Unmarshal(body, &got)
				assert.Equal(t, true, got["stream"])

				fmt.Fprint(w, ": keep-alive\n\n")                                    //nolint:errcheck
				fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"a\"}}]}\n\n") //nolint:errcheck
				fmt.Fprint(w, "data: not-json\n\n")                                    //nolint:errcheck
				fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"b\"}}]}\n\n") //nolint:errcheck
				fmt.Fprint(w, "data: [DONE]\n\n")                                      //nolint:errcheck
				fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"c\"}}]}\n\n") //nolint:errcheck
			},
			expectedChunks: 2,
		},
		"non-2xx": {
			req: validReq,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("upstream down"))
			},
			expectErr: "non-2xx response: 502 Bad Gateway: upstream down",
		},
		"missing-model": {
			req:       ChatRequest{Messages: validReq.Messages},
			expectErr: "model is required",
		},
		"missing-messages": {
			req:       ChatRequest{Model: "m"},
			expectErr: "messages are required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			handler := tt.handler
			if handler == nil {
				handler = func(w http.ResponseWriter, r *http.Request) {
					t.Fatal("server should not be called")
				}
			}
			server := httptest.NewServer(handler)
			defer server.Close()

			client := NewCompletionsClient(server.URL, "secret", server.Client())

			var chunks []StreamChunk
			err := client.StreamCompletions(context.Background(), tt.req, func(chunk StreamChunk) error {
				chunks = append(chunks, chunk)
				return nil
			})
			if tt.expectErr != "" {
				assert.EqualError(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, chunks, tt.expectedChunks)
		})
	}
}

func TestCompletionsClient_StreamCompletions_CallbackError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data: {\"choices\":[]}\n\n") //nolint:errcheck
	}))
	defer server.Close()

	client := NewCompletionsClient(server.URL, "", server.Client())
	err := client.StreamCompletions(context.Background(), ChatRequest{
		Model:    "m",
		Messages: []ChatMessage{{Role: "user"}},
	}, func(StreamChunk) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCompletionsClient_StreamCompletions_Failures(t *testing.T) {
	req := ChatRequest{Model: "m", Messages: []ChatMessage{{Role: "user"}}}

	tests := map[string]struct {
		handler           http.HandlerFunc
		expectErr         string
		expectUnavailable bool
	}{
		"in-stream-error": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "data: {\"error\":{\"message\":\"context length exceeded\"}}\n\n") //nolint:errcheck
			},
			expectErr: "model stream error: context length exceeded",
		},
		"service-unavailable": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("loading model\n"))
			},
			expectErr:         "non-2xx response: 503 Service Unavailable: loading model",
			expectUnavailable: true,
		},
		"rate-limited": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			expectErr:         "non-2xx response: 429 Too Many Requests: ",
			expectUnavailable: true,
		},
		"bad-request": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			expectErr: "non-2xx response: 400 Bad Request: ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewCompletionsClient(server.URL, "", server.Client())
			err := client.StreamCompletions(context.Background(), req, func(StreamChunk) error {
				t.Fatal("no chunk expected")
				return nil
			})
			assert.EqualError(t, err, tt.expectErr)

			var unavailable *domain.UnavailableErr
			assert.Equal(t, tt.expectUnavailable, errors.As(err, &unavailable))
		})
	}
}
