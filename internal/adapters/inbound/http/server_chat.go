package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
)

const (
	protocolData = "data"
	protocolText = "text"
)

// StreamChat streams the assistant answer using the Vercel AI data stream protocol.
// With ?protocol=text only the plain text deltas are written.
func (api ChillerPlantServer) StreamChat(w http.ResponseWriter, r *http.Request) {
	req := ChatRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, newErrorResp(ErrorCode_BadRequest, "invalid request body"))
		return
	}

	protocol := r.URL.Query().Get("protocol")
	if protocol == "" {
		protocol = protocolData
	}
	if protocol != protocolData && protocol != protocolText {
		respondJSON(w, http.StatusBadRequest, newErrorResp(ErrorCode_BadRequest, fmt.Sprintf("unsupported protocol %q", protocol)))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondJSON(w, http.StatusInternalServerError, newErrorResp(ErrorCode_InternalError, "streaming not supported"))
		return
	}

	sw := &streamWriter{w: w, flusher: flusher, textOnly: protocol == protocolText}

	err := api.StreamChatUseCase.Execute(r.Context(), toChatMessages(req.Messages), sw.onEvent)
	if err != nil {
		api.Logger.Error().Err(err).Bool("partial", sw.started).Msg("StreamChat: error during streaming")
		if !sw.started {
			respondError(w, err)
		}
	}
}

// Chat is kept for clients that still post to the non streaming endpoint.
func (api ChillerPlantServer) Chat(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{})
}

// streamWriter encodes orchestrator events as data stream lines.
type streamWriter struct {
	w        io.Writer
	flusher  http.Flusher
	textOnly bool
	started  bool
}

type toolCallLine struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName"`
	Args       json.RawMessage `json:"args"`
}

type toolResultLine struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName"`
	Args       json.RawMessage `json:"args"`
	Result     json.RawMessage `json:"result"`
}

type finishLine struct {
	FinishReason domain.StreamFinishReason `json:"finishReason"`
	Usage        usageLine                 `json:"usage"`
	IsContinued  bool                      `json:"isContinued"`
}

type usageLine struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
}

func (sw *streamWriter) onEvent(eventType domain.StreamEventType, data any) error {
	if sw.textOnly {
		if delta, ok := data.(domain.TextDelta); ok && delta.Content != nil {
			return sw.write([]byte(*delta.Content))
		}
		return nil
	}

	var (
		prefix  string
		payload any
	)
	switch e := data.(type) {
	case domain.TextDelta:
		prefix, payload = "0", e.Content
	case domain.ToolCallAnnounced:
		prefix, payload = "9", toolCallLine{
			ToolCallID: e.ToolCallID,
			ToolName:   e.ToolName,
			Args:       rawArgs(e.Args),
		}
	case domain.ToolCallCompleted:
		prefix, payload = "a", toolResultLine{
			ToolCallID: e.ToolCallID,
			ToolName:   e.ToolName,
			Args:       rawArgs(e.Args),
			Result:     e.Result,
		}
	case domain.StreamFinished:
		prefix, payload = "e", finishLine{
			FinishReason: e.FinishReason,
			Usage: usageLine{
				PromptTokens:     e.Usage.PromptTokens,
				CompletionTokens: e.Usage.CompletionTokens,
			},
			IsContinued: e.IsContinued,
		}
	default:
		return fmt.Errorf("unexpected stream event %s (%T)", eventType, data)
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	line := make([]byte, 0, len(b)+3)
	line = append(line, prefix...)
	line = append(line, ':')
	line = append(line, b...)
	line = append(line, '\n')
	return sw.write(line)
}

func (sw *streamWriter) write(b []byte) error {
	if !sw.started {
		sw.started = true
		if rw, ok := sw.w.(http.ResponseWriter); ok {
			rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
			rw.Header().Set("x-vercel-ai-data-stream", "v1")
			rw.Header().Set("Cache-Control", "no-cache")
			rw.Header().Set("X-Content-Type-Options", "nosniff")
			rw.WriteHeader(http.StatusOK)
		}
	}
	if _, err := sw.w.Write(b); err != nil {
		return err
	}
	sw.flusher.Flush()
	return nil
}

// rawArgs keeps valid JSON arguments as they are, turns empty arguments into an empty
// object and encodes anything else as a JSON string.
func rawArgs(args string) json.RawMessage {
	if args == "" {
		return json.RawMessage("{}")
	}
	if json.Valid([]byte(args)) {
		return json.RawMessage(args)
	}
	b, _ := json.Marshal(args)
	return b
}
