package domain

import "context"

// FinishReason is the reason a completion choice stopped producing tokens.
type FinishReason string

const (
	FinishReason_None          FinishReason = ""
	FinishReason_Stop          FinishReason = "stop"
	FinishReason_ToolCalls     FinishReason = "tool_calls"
	FinishReason_Length        FinishReason = "length"
	FinishReason_ContentFilter FinishReason = "content_filter"
)

// TokenUsage contains the token accounting reported by the provider at the end of a stream.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
}

// ToolCallDelta is one partial tool-call fragment received in a stream chunk.
// A non-empty ID marks the start of a new tool call.
type ToolCallDelta struct {
	Index     int
	ID        string
	Name      string
	Arguments string
}

// CompletionDelta is the incremental payload of a choice.
// Content is nil when the provider sent a null content.
type CompletionDelta struct {
	Content   *string
	ToolCalls []ToolCallDelta
}

// CompletionChoice is one choice of a stream chunk.
type CompletionChoice struct {
	FinishReason FinishReason
	Delta        CompletionDelta
}

// CompletionChunk is one event of a provider completion stream.
// A chunk without choices and with Usage set is the usage-accounting signal that ends the stream.
type CompletionChunk struct {
	Choices []CompletionChoice
	Usage   *TokenUsage
}

// CompletionRequest is the domain request for a streamed completion.
type CompletionRequest struct {
	Messages []ChatMessage
	Tools    []ToolDefinition
}

// CompletionChunkCallback is invoked for every chunk of a completion stream, in order.
type CompletionChunkCallback func(chunk CompletionChunk) error

// Assistant streams completions from an LLM provider.
type Assistant interface {
	// StreamCompletion opens a streaming completion and calls onChunk for each chunk until the stream ends.
	StreamCompletion(ctx context.Context, req CompletionRequest, onChunk CompletionChunkCallback) error
}
