package usecases

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter            = otel.Meter("usecases")
	LLMTokensUsed    metric.Int64Counter
	ToolCallsTotal   metric.Int64Counter
	ToolCallDuration metric.Float64Histogram
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	ToolCallsTotal, err = meter.Int64Counter(
		"assistant_tool_calls_total",
		metric.WithDescription("Total tool calls dispatched on behalf of the assistant"),
	)
	if err != nil {
		panic(err)
	}

	ToolCallDuration, err = meter.Float64Histogram(
		"assistant_tool_call_duration_seconds",
		metric.WithDescription("Time spent executing a tool call, store round-trips included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordToolCall counts one dispatched tool call and its duration. outcome is "ok" or "error".
func RecordToolCall(ctx context.Context, tool, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	)
	ToolCallsTotal.Add(ctx, 1, attrs)
	ToolCallDuration.Record(ctx, elapsed.Seconds(), attrs)
}
