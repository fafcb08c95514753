package domain

import "encoding/json"

// StreamEventType is the type of event emitted by the chat orchestrator.
type StreamEventType string

const (
	StreamEventType_TextDelta         StreamEventType = "text_delta"
	StreamEventType_ToolCallAnnounced StreamEventType = "tool_call_announced"
	StreamEventType_ToolCallCompleted StreamEventType = "tool_call_completed"
	StreamEventType_Finished          StreamEventType = "finished"
)

// StreamFinishReason is the finish reason reported to the client when a stream ends.
type StreamFinishReason string

const (
	StreamFinishReason_Stop      StreamFinishReason = "stop"
	StreamFinishReason_ToolCalls StreamFinishReason = "tool-calls"
)

// TextDelta carries a text fragment. Content is nil when the provider sent a null content.
type TextDelta struct {
	Content *string
}

// ToolCallAnnounced is emitted once per accumulated tool call before any tool runs.
type ToolCallAnnounced struct {
	ToolCallID string
	ToolName   string
	Args       string
}

// ToolCallCompleted carries the JSON result of one dispatched tool call.
type ToolCallCompleted struct {
	ToolCallID string
	ToolName   string
	Args       string
	Result     json.RawMessage
}

// StreamFinished is the terminal event of a chat stream.
type StreamFinished struct {
	FinishReason StreamFinishReason
	Usage        TokenUsage
	IsContinued  bool
}

// StreamEventCallback receives the orchestrator events in emission order.
type StreamEventCallback func(eventType StreamEventType, data any) error
