package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StreamChat defines the interface for the StreamChat use case
type StreamChat interface {
	// Execute streams the assistant answer to messages, running any tool calls the
	// model requests, and reports every step through onEvent.
	Execute(ctx context.Context, messages []domain.ChatMessage, onEvent domain.StreamEventCallback) error
}

// StreamChatImpl is the implementation of the StreamChat use case
type StreamChatImpl struct {
	assistant     domain.Assistant
	toolRegistry  domain.ToolRegistry
	promptBuilder SystemPromptBuilder
	logger        zerolog.Logger
}

// NewStreamChatImpl creates a new instance of StreamChatImpl
func NewStreamChatImpl(
	assistant domain.Assistant,
	toolRegistry domain.ToolRegistry,
	promptBuilder SystemPromptBuilder,
	logger zerolog.Logger,
) StreamChatImpl {
	return StreamChatImpl{
		assistant:     assistant,
		toolRegistry:  toolRegistry,
		promptBuilder: promptBuilder,
		logger:        logger,
	}
}

// toolFragment is a tool call being assembled from streamed deltas.
type toolFragment struct {
	id   string
	name string
	args string
}

type streamChatState struct {
	fragments  []*toolFragment
	dispatched int
	usage      domain.TokenUsage
	finished   bool
}

// accumulate applies tool-call deltas. A delta with an id opens a new fragment,
// otherwise its argument text is appended to the fragment it points at.
func (s *streamChatState) accumulate(deltas []domain.ToolCallDelta) {
	for _, d := range deltas {
		if d.ID != "" {
			s.fragments = append(s.fragments, &toolFragment{
				id:   d.ID,
				name: d.Name,
				args: d.Arguments,
			})
			continue
		}
		if len(s.fragments) == 0 {
			continue
		}
		f := s.fragments[len(s.fragments)-1]
		if d.Index >= 0 && d.Index < len(s.fragments) {
			f = s.fragments[d.Index]
		}
		if f.name == "" {
			f.name = d.Name
		}
		f.args += d.Arguments
	}
}

func (s *streamChatState) finishReason() domain.StreamFinishReason {
	if len(s.fragments) > 0 {
		return domain.StreamFinishReason_ToolCalls
	}
	return domain.StreamFinishReason_Stop
}

// Execute implements StreamChat.
func (sc StreamChatImpl) Execute(ctx context.Context, messages []domain.ChatMessage, onEvent domain.StreamEventCallback) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("messages", len(messages)),
	))
	defer span.End()

	if len(messages) == 0 {
		err := domain.NewValidationErr("messages cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	for _, m := range messages {
		if err := m.Role.Validate(); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
	}

	system, err := sc.promptBuilder.Build(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	req := domain.CompletionRequest{
		Messages: append([]domain.ChatMessage{system}, messages...),
		Tools:    sc.toolRegistry.List(),
	}

	state := &streamChatState{}
	err = sc.assistant.StreamCompletion(spanCtx, req, func(chunk domain.CompletionChunk) error {
		return sc.handleChunk(spanCtx, chunk, state, onEvent)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	// Providers that never report usage still get exactly one finish event.
	if err := sc.finish(spanCtx, state, onEvent); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (sc StreamChatImpl) handleChunk(ctx context.Context, chunk domain.CompletionChunk, state *streamChatState, onEvent domain.StreamEventCallback) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(chunk.Choices) == 0 {
		if chunk.Usage == nil {
			return nil
		}
		state.usage = *chunk.Usage
		return sc.finish(ctx, state, onEvent)
	}
	if chunk.Usage != nil {
		state.usage = *chunk.Usage
	}

	for _, choice := range chunk.Choices {
		switch {
		case choice.FinishReason == domain.FinishReason_Stop:
			continue
		case choice.FinishReason == domain.FinishReason_ToolCalls:
			if err := sc.runToolCalls(ctx, state, onEvent); err != nil {
				return err
			}
		case len(choice.Delta.ToolCalls) > 0:
			state.accumulate(choice.Delta.ToolCalls)
		default:
			if err := onEvent(domain.StreamEventType_TextDelta, domain.TextDelta{Content: choice.Delta.Content}); err != nil {
				return err
			}
		}
	}
	return nil
}

// runToolCalls announces every fragment not yet dispatched, then runs them one by one.
func (sc StreamChatImpl) runToolCalls(ctx context.Context, state *streamChatState, onEvent domain.StreamEventCallback) error {
	pending := state.fragments[state.dispatched:]
	state.dispatched = len(state.fragments)

	for _, f := range pending {
		if err := onEvent(domain.StreamEventType_ToolCallAnnounced, domain.ToolCallAnnounced{
			ToolCallID: f.id,
			ToolName:   f.name,
			Args:       f.args,
		}); err != nil {
			return err
		}
	}

	for _, f := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := sc.dispatch(ctx, f)
		if err != nil {
			return err
		}
		if err := onEvent(domain.StreamEventType_ToolCallCompleted, domain.ToolCallCompleted{
			ToolCallID: f.id,
			ToolName:   f.name,
			Args:       f.args,
			Result:     result,
		}); err != nil {
			return err
		}
	}
	return nil
}

// dispatch runs one tool call. Tool failures become an {"error": ...} result;
// only cancellation of ctx aborts the stream.
func (sc StreamChatImpl) dispatch(ctx context.Context, f *toolFragment) (json.RawMessage, error) {
	started := time.Now()
	result, err := sc.toolRegistry.Dispatch(ctx, domain.ToolCall{ID: f.id, Name: f.name, Arguments: f.args})
	if err == nil {
		RecordToolCall(ctx, f.name, "ok", time.Since(started))
		return result, nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	RecordToolCall(ctx, f.name, "error", time.Since(started))
	sc.logger.Warn().Err(err).Str("tool", f.name).Str("tool_call_id", f.id).Msg("tool call failed")
	return toolErrorResult(err), nil
}

func toolErrorResult(err error) json.RawMessage {
	b, mErr := json.Marshal(map[string]string{"error": err.Error()})
	if mErr != nil {
		return json.RawMessage(`{"error":"tool failed"}`)
	}
	return b
}

func (sc StreamChatImpl) finish(ctx context.Context, state *streamChatState, onEvent domain.StreamEventCallback) error {
	if state.finished {
		return nil
	}
	state.finished = true

	RecordLLMTokensUsed(ctx, state.usage.PromptTokens, state.usage.CompletionTokens)

	return onEvent(domain.StreamEventType_Finished, domain.StreamFinished{
		FinishReason: state.finishReason(),
		Usage:        state.usage,
		IsContinued:  false,
	})
}

// InitStreamChat initializes the StreamChat use case.
type InitStreamChat struct {
	Assistant     domain.Assistant    `resolve:""`
	ToolRegistry  domain.ToolRegistry `resolve:""`
	PromptBuilder SystemPromptBuilder `resolve:""`
	Logger        zerolog.Logger      `resolve:""`
}

// Initialize registers the StreamChat use case implementation.
func (i InitStreamChat) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StreamChat](NewStreamChatImpl(i.Assistant, i.ToolRegistry, i.PromptBuilder, i.Logger))
	return ctx, nil
}
