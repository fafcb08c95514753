package modelrunner

import (
	"context"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// ProviderName selects this adapter through LLM_PROVIDER.
const ProviderName = "modelrunner"

// AssistantClient adapts CompletionsClient to domain.Assistant.
type AssistantClient struct {
	client CompletionsClient
	model  string
}

// NewAssistantClientAdapter creates a new adapter.
func NewAssistantClientAdapter(client CompletionsClient, model string) AssistantClient {
	return AssistantClient{client: client, model: model}
}

// StreamCompletion implements domain.Assistant. Chunks are forwarded unchanged; tool-call
// fragments are left for the caller to accumulate.
func (a AssistantClient) StreamCompletion(ctx context.Context, req domain.CompletionRequest, onChunk domain.CompletionChunkCallback) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := a.client.StreamCompletions(spanCtx, toChatRequest(a.model, req), func(chunk StreamChunk) error {
		return onChunk(toCompletionChunk(chunk))
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

func toCompletionChunk(chunk StreamChunk) domain.CompletionChunk {
	out := domain.CompletionChunk{
		Choices: make([]domain.CompletionChoice, 0, len(chunk.Choices)),
	}
	for _, choice := range chunk.Choices {
		c := domain.CompletionChoice{
			Delta: domain.CompletionDelta{Content: choice.Delta.Content},
		}
		if choice.FinishReason != nil {
			c.FinishReason = domain.FinishReason(*choice.FinishReason)
		}
		for _, tc := range choice.Delta.ToolCalls {
			c.Delta.ToolCalls = append(c.Delta.ToolCalls, domain.ToolCallDelta{
				Index:     tc.Index,
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			})
		}
		out.Choices = append(out.Choices, c)
	}
	if chunk.Usage != nil {
		out.Usage = &domain.TokenUsage{
			PromptTokens:     chunk.Usage.PromptTokens,
			CompletionTokens: chunk.Usage.CompletionTokens,
		}
	}
	return out
}

func toChatRequest(model string, req domain.CompletionRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:         model,
		Stream:        true,
		StreamOptions: &StreamOptions{IncludeUsage: true},
		Messages:      make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ToolCallID,
			Content:    msg.Content,
		}
		for _, call := range msg.ToolCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   call.ID,
				Type: toolTypeFunction,
				Function: FunctionCall{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		adapterReq.Messages[i] = adpMsg
	}

	for _, def := range req.Tools {
		adapterReq.Tools = append(adapterReq.Tools, Tool{
			Type: toolTypeFunction,
			Function: ToolFunc{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.InputSchema,
			},
		})
	}

	return adapterReq
}

// InitAssistantClient registers the model runner as the domain.Assistant when
// LLM_PROVIDER is "modelrunner".
type InitAssistantClient struct {
	Logger     zerolog.Logger `resolve:""`
	HttpClient *http.Client   `resolve:""`
	Provider   string         `config:"LLM_PROVIDER" default:"azure"`
	ModelHost  string         `config:"LLM_MODEL_HOST" default:"http://localhost:12434/engines"`
	Model      string         `config:"LLM_MODEL" default:"ai/qwen3"`
	APIKey     string         `config:"LLM_API_KEY" default:"-"`
}

// Initialize registers the adapter.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != ProviderName {
		return ctx, nil
	}
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	adapter := NewAssistantClientAdapter(NewCompletionsClient(i.ModelHost, apiKey, i.HttpClient), i.Model)
	depend.Register[domain.Assistant](adapter)
	i.Logger.Info().Str("model", i.Model).Str("host", i.ModelHost).Msg("using model runner assistant")
	return ctx, nil
}
