// Package azureopenai streams chat completions from an Azure OpenAI deployment.
package azureopenai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"
)

// ProviderName selects this adapter through LLM_PROVIDER.
const ProviderName = "azure"

// AssistantClient implements domain.Assistant over the Azure OpenAI chat completions API.
type AssistantClient struct {
	client     openai.Client
	deployment string
}

// NewAssistantClient creates an AssistantClient for one deployment.
func NewAssistantClient(client openai.Client, deployment string) AssistantClient {
	return AssistantClient{client: client, deployment: deployment}
}

// StreamCompletion implements domain.Assistant.
func (a AssistantClient) StreamCompletion(ctx context.Context, req domain.CompletionRequest, onChunk domain.CompletionChunkCallback) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	params, err := a.toParams(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	stream := a.client.Chat.Completions.NewStreaming(spanCtx, params)
	defer stream.Close() //nolint:errcheck

	for stream.Next() {
		if err := onChunk(toCompletionChunk(stream.Current())); err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}
	}

	err = stream.Err()
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("azure openai stream: %w", err)
	}
	return nil
}

func (a AssistantClient) toParams(req domain.CompletionRequest) (openai.ChatCompletionNewParams, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.deployment),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)),
		StreamOptions: openai.ChatCompletionStreamOptionsParam{
			IncludeUsage: openai.Bool(true),
		},
	}

	for _, msg := range req.Messages {
		m, err := toMessage(msg)
		if err != nil {
			return params, err
		}
		params.Messages = append(params.Messages, m)
	}

	for _, def := range req.Tools {
		tool, err := toTool(def)
		if err != nil {
			return params, err
		}
		params.Tools = append(params.Tools, tool)
	}
	return params, nil
}

func toMessage(msg domain.ChatMessage) (openai.ChatCompletionMessageParamUnion, error) {
	switch msg.Role {
	case domain.ChatRole_System:
		return openai.SystemMessage(msg.Text()), nil
	case domain.ChatRole_User:
		return openai.UserMessage(msg.Text()), nil
	case domain.ChatRole_Tool:
		return openai.ToolMessage(msg.Text(), msg.ToolCallID), nil
	case domain.ChatRole_Assistant:
		if len(msg.ToolCalls) == 0 {
			return openai.AssistantMessage(msg.Text()), nil
		}
		assistant := &openai.ChatCompletionAssistantMessageParam{}
		if msg.Content != nil {
			assistant.Content.OfString = openai.String(*msg.Content)
		}
		for _, call := range msg.ToolCalls {
			assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
				OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
					ID: call.ID,
					Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
						Name:      call.Name,
						Arguments: call.Arguments,
					},
				},
			})
		}
		return openai.ChatCompletionMessageParamUnion{OfAssistant: assistant}, nil
	}
	return openai.ChatCompletionMessageParamUnion{}, msg.Role.Validate()
}

func toTool(def domain.ToolDefinition) (openai.ChatCompletionToolUnionParam, error) {
	params := openai.FunctionParameters{"type": "object", "properties": map[string]any{}}
	if def.InputSchema != nil {
		b, err := json.Marshal(def.InputSchema)
		if err != nil {
			return openai.ChatCompletionToolUnionParam{}, fmt.Errorf("marshal %s schema: %w", def.Name, err)
		}
		params = openai.FunctionParameters{}
		if err := json.Unmarshal(b, &params); err != nil {
			return openai.ChatCompletionToolUnionParam{}, fmt.Errorf("unmarshal %s schema: %w", def.Name, err)
		}
	}
	return openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        def.Name,
		Description: openai.String(def.Description),
		Parameters:  params,
	}), nil
}

func toCompletionChunk(chunk openai.ChatCompletionChunk) domain.CompletionChunk {
	out := domain.CompletionChunk{
		Choices: make([]domain.CompletionChoice, 0, len(chunk.Choices)),
	}
	for _, choice := range chunk.Choices {
		c := domain.CompletionChoice{FinishReason: domain.FinishReason(choice.FinishReason)}
		if choice.Delta.JSON.Content.Valid() {
			content := choice.Delta.Content
			c.Delta.Content = &content
		}
		for _, tc := range choice.Delta.ToolCalls {
			c.Delta.ToolCalls = append(c.Delta.ToolCalls, domain.ToolCallDelta{
				Index:     int(tc.Index),
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			})
		}
		out.Choices = append(out.Choices, c)
	}
	if chunk.JSON.Usage.Valid() {
		out.Usage = &domain.TokenUsage{
			PromptTokens:     int(chunk.Usage.PromptTokens),
			CompletionTokens: int(chunk.Usage.CompletionTokens),
		}
	}
	return out
}

// InitAssistantClient registers the Azure OpenAI deployment as the domain.Assistant
// when LLM_PROVIDER is "azure".
type InitAssistantClient struct {
	Logger     zerolog.Logger `resolve:""`
	HttpClient *http.Client   `resolve:""`
	Provider   string         `config:"LLM_PROVIDER" default:"azure"`
	APIKey     string         `config:"AZURE_OPENAI_API_KEY" default:"-"`
	Endpoint   string         `config:"AZURE_OPENAI_ENDPOINT" default:"-"`
	APIVersion string         `config:"AZURE_OPENAI_API_VERSION" default:"2024-10-21"`
	Deployment string         `config:"AZURE_OPENAI_DEPLOYMENT" default:"gpt-4o"`
}

// Initialize validates the credentials and registers the adapter.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != ProviderName {
		return ctx, nil
	}
	switch {
	case i.APIKey == "-" || i.APIKey == "":
		return ctx, errors.New("AZURE_OPENAI_API_KEY is required")
	case i.Endpoint == "-" || i.Endpoint == "":
		return ctx, errors.New("AZURE_OPENAI_ENDPOINT is required")
	}

	client := openai.NewClient(
		azure.WithEndpoint(i.Endpoint, i.APIVersion),
		azure.WithAPIKey(i.APIKey),
		option.WithHTTPClient(i.HttpClient),
		option.WithMaxRetries(0),
	)
	depend.Register[domain.Assistant](NewAssistantClient(client, i.Deployment))
	i.Logger.Info().Str("deployment", i.Deployment).Str("api_version", i.APIVersion).Msg("using azure openai assistant")
	return ctx, nil
}
