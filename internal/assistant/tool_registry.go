package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/assistant/tools"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultStatusMessage = "⏳ Processing request..."

// registeredTool holds a tool and its resolved input schema.
type registeredTool struct {
	tool   domain.Tool
	schema *jsonschema.Resolved
	hidden bool
}

// ToolRegistry is the one registry of assistant tools. It validates call
// arguments against each tool input schema before running the tool.
type ToolRegistry struct {
	tools  map[string]registeredTool
	logger zerolog.Logger
}

// NewToolRegistry resolves the input schema of every tool. Tools named in hidden
// can be dispatched but are not advertised by List.
func NewToolRegistry(logger zerolog.Logger, all []domain.Tool, hidden ...string) (ToolRegistry, error) {
	registry := ToolRegistry{
		tools:  make(map[string]registeredTool, len(all)),
		logger: logger,
	}
	for _, t := range all {
		def := t.Definition()
		if _, exists := registry.tools[def.Name]; exists {
			return ToolRegistry{}, fmt.Errorf("tool %q registered twice", def.Name)
		}

		schema := def.InputSchema
		if schema == nil {
			schema = &jsonschema.Schema{Type: "object"}
		}
		resolved, err := schema.Resolve(nil)
		if err != nil {
			return ToolRegistry{}, fmt.Errorf("failed to resolve input schema of tool %q: %w", def.Name, err)
		}

		registry.tools[def.Name] = registeredTool{
			tool:   t,
			schema: resolved,
			hidden: slices.Contains(hidden, def.Name),
		}
	}
	return registry, nil
}

// Dispatch validates the call arguments and runs the tool. Empty arguments are read as {}.
func (r ToolRegistry) Dispatch(ctx context.Context, call domain.ToolCall) (json.RawMessage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tool", call.Name),
		attribute.String("tool_call_id", call.ID),
	))
	defer span.End()

	registered, ok := r.tools[call.Name]
	if !ok {
		err := domain.NewUnknownToolErr(call.Name)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	args := strings.TrimSpace(call.Arguments)
	if args == "" {
		args = "{}"
	}

	var instance any
	if err := json.Unmarshal([]byte(args), &instance); err != nil {
		err := domain.NewInvalidArgumentsErr(fmt.Sprintf("invalid arguments for %s: %s", call.Name, err))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if err := registered.schema.Validate(instance); err != nil {
		err := domain.NewInvalidArgumentsErr(fmt.Sprintf("invalid arguments for %s: %s", call.Name, err))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	r.logger.Debug().Str("tool", call.Name).Str("tool_call_id", call.ID).RawJSON("args", []byte(args)).Msg("dispatching tool call")

	result, err := registered.tool.Execute(spanCtx, json.RawMessage(args))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		err = fmt.Errorf("failed to encode result of %s: %w", call.Name, err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	return encoded, nil
}

// Has reports whether name is registered, advertised or not.
func (r ToolRegistry) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// List returns the advertised tool definitions sorted by name.
func (r ToolRegistry) List() []domain.ToolDefinition {
	res := make([]domain.ToolDefinition, 0, len(r.tools))
	for _, t := range r.tools {
		if t.hidden {
			continue
		}
		res = append(res, t.tool.Definition())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// StatusMessage returns the progress text of a tool.
func (r ToolRegistry) StatusMessage(name string) string {
	if t, ok := r.tools[name]; ok {
		if msg := t.tool.StatusMessage(); msg != "" {
			return msg
		}
	}
	return defaultStatusMessage
}

var _ domain.ToolRegistry = ToolRegistry{}

// InitToolRegistry builds every assistant tool and registers the ToolRegistry.
type InitToolRegistry struct {
	Logger                zerolog.Logger             `resolve:""`
	Weather               domain.WeatherProvider     `resolve:""`
	Telemetry             domain.TelemetryRepository `resolve:""`
	Scheduler             usecases.ChillerScheduler  `resolve:""`
	MaintenanceDesk       usecases.MaintenanceDesk   `resolve:""`
	ExposeConfirmSchedule bool                       `config:"LLM_EXPOSE_CONFIRM_SCHEDULE" default:"false"`
}

// Initialize registers the tool registry in the dependency container.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	var hidden []string
	if !i.ExposeConfirmSchedule {
		hidden = append(hidden, tools.NewConfirmScheduleTool(i.Scheduler).Definition().Name)
	}

	registry, err := NewToolRegistry(i.Logger, []domain.Tool{
		tools.NewCurrentWeatherTool(i.Weather),
		tools.NewMockChartTool(),
		tools.NewChillerStatusTool(i.Telemetry),
		tools.NewEquipmentStatusTool(i.Telemetry),
		tools.NewAllChillersTool(i.Telemetry),
		tools.NewScheduleTool(i.Scheduler),
		tools.NewScheduleAvailabilityTool(i.Scheduler),
		tools.NewAddScheduleTool(i.Scheduler),
		tools.NewConfirmScheduleTool(i.Scheduler),
		tools.NewMaintenanceStatusTool(i.MaintenanceDesk),
		tools.NewMaintenanceHistoryTool(i.MaintenanceDesk),
		tools.NewMaintenanceRequestTool(i.MaintenanceDesk),
	}, hidden...)
	if err != nil {
		return ctx, fmt.Errorf("failed to build tool registry: %w", err)
	}

	depend.Register[domain.ToolRegistry](registry)
	return ctx, nil
}
