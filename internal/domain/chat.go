package domain

import "fmt"

// ChatRole represents the author of a chat message.
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_Tool      ChatRole = "tool"
)

// Validate reports whether the role is one the assistant understands.
func (r ChatRole) Validate() error {
	switch r {
	case ChatRole_System, ChatRole_User, ChatRole_Assistant, ChatRole_Tool:
		return nil
	}
	return NewValidationErr(fmt.Sprintf("invalid chat role %q", r))
}

// ToolCall is a finalized tool invocation requested by the assistant.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ChatMessage is one message of the conversation sent to the assistant.
// Content is nil when the message carries no text (e.g. an assistant message with only tool calls).
type ChatMessage struct {
	Role       ChatRole `yaml:"role"`
	Content    *string  `yaml:"content"`
	ToolCalls  []ToolCall
	ToolCallID string
}

// Text returns the message content or an empty string when there is none.
func (m ChatMessage) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}
