package modelrunner

import "github.com/google/jsonschema-go/jsonschema"

const toolTypeFunction = "function"

// ChatRequest is the chat-completions request body.
type ChatRequest struct {
	Model         string         `json:"model"`
	Messages      []ChatMessage  `json:"messages"`
	Stream        bool           `json:"stream,omitempty"`
	StreamOptions *StreamOptions `json:"stream_options,omitempty"`
	Tools         []Tool         `json:"tools,omitempty"`
}

// StreamOptions asks the server to append a usage-only chunk before [DONE].
type StreamOptions struct {
	IncludeUsage bool `json:"include_usage,omitempty"`
}

// Tool declares a function the model may call.
type Tool struct {
	Type     string   `json:"type"`
	Function ToolFunc `json:"function"`
}

type ToolFunc struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// ChatMessage is one conversation message. A nil Content is sent as null, which
// assistant messages carrying only tool calls require.
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    *string    `json:"content"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall is a complete tool call replayed from the conversation history.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries a tool name and its raw JSON arguments. In stream deltas
// both fields may be partial or empty.
type FunctionCall struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments"`
}

// StreamChunk is one SSE data packet. Usage is only set on the final chunk when
// StreamOptions.IncludeUsage was requested; Error is set by servers that report
// failures in-stream.
type StreamChunk struct {
	Choices []StreamChoice `json:"choices"`
	Usage   *Usage         `json:"usage,omitempty"`
	Error   *StreamError   `json:"error,omitempty"`
}

type StreamChoice struct {
	Index        int         `json:"index"`
	FinishReason *string     `json:"finish_reason"`
	Delta        StreamDelta `json:"delta"`
}

// StreamDelta is the incremental message content. Content is nil when the
// server sent null or omitted it.
type StreamDelta struct {
	Role      *string         `json:"role,omitempty"`
	Content   *string         `json:"content"`
	ToolCalls []ToolCallDelta `json:"tool_calls,omitempty"`
}

// ToolCallDelta is a tool-call fragment. Only the first fragment of a call carries
// the ID and name; later ones append to Arguments.
type ToolCallDelta struct {
	Index    int          `json:"index"`
	ID       string       `json:"id,omitempty"`
	Type     string       `json:"type,omitempty"`
	Function FunctionCall `json:"function"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

type StreamError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}
