// Package modelrunner talks to an OpenAI-compatible chat-completions endpoint
// (Docker Model Runner, llama.cpp server) over server-sent events.
package modelrunner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
)

const (
	completionsPath = "/v1/chat/completions"
	sseDataPrefix   = "data:"
	sseDone         = "[DONE]"

	// maxLineSize bounds a single SSE line; tool-call argument chunks can be large.
	maxLineSize = 1024 * 1024
)

// CompletionsClient streams chat completions from an OpenAI-compatible server.
type CompletionsClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewCompletionsClient creates a new client. An empty apiKey sends no Authorization header.
func NewCompletionsClient(baseURL string, apiKey string, httpClient *http.Client) CompletionsClient {
	return CompletionsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// ChunkCallback is called for each decoded stream chunk, in arrival order.
type ChunkCallback func(chunk StreamChunk) error

// StreamCompletions posts req with streaming enabled and calls onChunk for every
// SSE data packet until [DONE] or the end of the body. Malformed packets are skipped;
// an error packet ends the stream with an error.
func (c CompletionsClient) StreamCompletions(ctx context.Context, req ChatRequest, onChunk ChunkCallback) error {
	if req.Model == "" {
		return errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return errors.New("messages are required")
	}
	req.Stream = true

	httpReq, err := c.newStreamRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return domain.NewUnavailableErr("model endpoint unreachable", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := statusErr(resp); err != nil {
		return err
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		payload, ok := strings.CutPrefix(scanner.Text(), sseDataPrefix)
		if !ok {
			continue
		}
		payload = strings.TrimSpace(payload)
		switch payload {
		case "":
			continue
		case sseDone:
			return nil
		}

		var chunk StreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			continue
		}
		if chunk.Error != nil {
			return fmt.Errorf("model stream error: %s", chunk.Error.Message)
		}
		if err := onChunk(chunk); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// statusErr turns a non-200 response into an error. Overload and server failures
// are reported as unavailable so callers can tell them apart from bad requests.
func statusErr(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	err := fmt.Errorf("non-2xx response: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return domain.NewUnavailableErr(err.Error(), err)
	}
	return err
}

func (c CompletionsClient) newStreamRequest(ctx context.Context, body ChatRequest) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, completionsPath)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}
