package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/usecases"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testTimeout = 5 * time.Second
	testTick    = 50 * time.Millisecond
)

func TestChillerPlantServer_Routes(t *testing.T) {
	var logs bytes.Buffer
	mockStreamChat := usecases.NewMockStreamChat(t)
	mockStreamChat.EXPECT().
		Execute(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(emitting(
			emittedEvent{domain.StreamEventType_TextDelta, domain.TextDelta{Content: common.Ptr("ok")}},
			emittedEvent{domain.StreamEventType_Finished, domain.StreamFinished{FinishReason: domain.StreamFinishReason_Stop}},
		))

	api := ChillerPlantServer{
		Logger:            zerolog.New(&logs),
		StreamChatUseCase: mockStreamChat,
	}
	srv := httptest.NewServer(api.Routes())
	defer srv.Close()

	tests := map[string]struct {
		method         string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		"healthz": {
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}` + "\n",
		},
		"chat-stub": {
			method:         http.MethodPost,
			path:           "/api/chat",
			body:           `{"messages":[]}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{}` + "\n",
		},
		"chat-streaming-through-middleware": {
			method:         http.MethodPost,
			path:           "/api/chat_streaming",
			body:           `{"messages":[{"role":"user","content":"hi"}]}`,
			expectedStatus: http.StatusOK,
			expectedBody: "0:\"ok\"\n" +
				"e:{\"finishReason\":\"stop\",\"usage\":{\"promptTokens\":0,\"completionTokens\":0},\"isContinued\":false}\n",
		},
		"mcp-disabled": {
			method:         http.MethodPost,
			path:           "/mcp",
			body:           `{}`,
			expectedStatus: http.StatusNotFound,
		},
		"wrong-method": {
			method:         http.MethodGet,
			path:           "/api/chat",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(context.Background(), tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			req.Header.Set("Origin", "http://localhost:3000")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, string(body))
			}
		})
	}

	assert.Contains(t, logs.String(), `"path":"/api/chat_streaming"`)
	assert.Contains(t, logs.String(), `"status":405`)
}

func TestChillerPlantServer_RunAndIsReady(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	api := ChillerPlantServer{Port: 18089, Logger: zerolog.Nop()}

	done := make(chan error, 1)
	go func() {
		done <- api.Run(ctx)
	}()

	assert.Eventually(t, func() bool {
		return api.IsReady(ctx) == nil
	}, testTimeout, testTick)

	cancel()
	assert.NoError(t, <-done)
}
