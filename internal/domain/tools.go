package domain

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// ToolDefinition describes a tool advertised to the assistant.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// Tool is one callable capability the assistant may invoke.
type Tool interface {
	Definition() ToolDefinition
	// StatusMessage is a short human readable text shown while the tool runs.
	StatusMessage() string
	// Execute runs the tool with arguments already validated against its input schema.
	// The returned value is serialized to JSON as the tool result.
	Execute(ctx context.Context, args json.RawMessage) (any, error)
}

// ToolRegistry advertises and dispatches the registered tools.
type ToolRegistry interface {
	// Dispatch validates the call arguments and runs the named tool, returning its JSON result.
	Dispatch(ctx context.Context, call ToolCall) (json.RawMessage, error)
	// Has reports whether a tool with the given name is registered.
	Has(name string) bool
	// List returns the definitions advertised to the assistant, sorted by name.
	List() []ToolDefinition
	StatusMessage(name string) string
}
