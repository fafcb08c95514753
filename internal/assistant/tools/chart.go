package tools

import (
	"context"
	"encoding/json"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
)

// MockChartTool returns a fixed ECharts line chart the UI can render as a demo.
type MockChartTool struct{}

// NewMockChartTool creates a new instance of MockChartTool.
func NewMockChartTool() MockChartTool {
	return MockChartTool{}
}

func (MockChartTool) StatusMessage() string {
	return "📊 Generating chart..."
}

func (MockChartTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "generate_mock_chart",
		Description: "Generate a sample line chart in ECharts option format.",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}
}

func (MockChartTool) Execute(_ context.Context, args json.RawMessage) (any, error) {
	var params struct{}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}
	return map[string]any{
		"title": map[string]any{"text": "Sample Chart"},
		"xAxis": map[string]any{
			"type": "category",
			"data": []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		},
		"yAxis": map[string]any{"type": "value"},
		"series": []map[string]any{{
			"data": []int{150, 230, 224, 218, 135, 147, 260},
			"type": "line",
		}},
	}, nil
}
