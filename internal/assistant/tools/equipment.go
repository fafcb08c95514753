package tools

import (
	"context"
	"encoding/json"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
)

// ChillerStatusTool returns the latest metrics of one chiller.
type ChillerStatusTool struct {
	telemetry domain.TelemetryRepository
}

// NewChillerStatusTool creates a new instance of ChillerStatusTool.
func NewChillerStatusTool(telemetry domain.TelemetryRepository) ChillerStatusTool {
	return ChillerStatusTool{telemetry: telemetry}
}

func (ChillerStatusTool) StatusMessage() string {
	return "❄️ Checking chiller status..."
}

func (ChillerStatusTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "get_chiller_status",
		Description: "Get detailed status of a specific chiller including operational metrics.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"chiller_id": chillerIDSchema("The ID of the chiller to check"),
			},
			Required: []string{"chiller_id"},
		},
	}
}

func (t ChillerStatusTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		ChillerID string `json:"chiller_id"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}
	return latestMetrics(ctx, t.telemetry, params.ChillerID)
}

// EquipmentStatusTool returns the latest metrics of any device (pumps, cooling towers...).
type EquipmentStatusTool struct {
	telemetry domain.TelemetryRepository
}

// NewEquipmentStatusTool creates a new instance of EquipmentStatusTool.
func NewEquipmentStatusTool(telemetry domain.TelemetryRepository) EquipmentStatusTool {
	return EquipmentStatusTool{telemetry: telemetry}
}

func (EquipmentStatusTool) StatusMessage() string {
	return "🔧 Checking equipment status..."
}

func (EquipmentStatusTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "get_equipment_status",
		Description: "Get status of any equipment (pumps, cooling towers, etc.).",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"equipment_id": {
					Type:        "string",
					Description: "The ID of the equipment (e.g., pchp_1, ct_1, cdp_1)",
				},
			},
			Required: []string{"equipment_id"},
		},
	}
}

func (t EquipmentStatusTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		EquipmentID string `json:"equipment_id"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}
	return latestMetrics(ctx, t.telemetry, params.EquipmentID)
}

// latestMetrics returns nil (JSON null) when no snapshot reports the device.
func latestMetrics(ctx context.Context, telemetry domain.TelemetryRepository, id string) (any, error) {
	metrics, found, err := telemetry.LatestEquipmentMetrics(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return metrics, nil
}

// AllChillersTool returns every chiller of the newest telemetry snapshot.
type AllChillersTool struct {
	telemetry domain.TelemetryRepository
}

// NewAllChillersTool creates a new instance of AllChillersTool.
func NewAllChillersTool(telemetry domain.TelemetryRepository) AllChillersTool {
	return AllChillersTool{telemetry: telemetry}
}

func (AllChillersTool) StatusMessage() string {
	return "❄️ Checking all chillers..."
}

func (AllChillersTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "get_all_chillers",
		Description: "Get status overview of all chillers in the system.",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}
}

func (t AllChillersTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct{}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}
	chillers, err := t.telemetry.LatestChillerMetrics(ctx)
	if err != nil {
		return nil, err
	}
	if chillers == nil {
		chillers = map[string]domain.EquipmentMetrics{}
	}
	return chillers, nil
}
