package tools

import (
	"context"
	"encoding/json"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
)

// CurrentWeatherTool returns the forecast around the plant, used to reason about cooling load.
type CurrentWeatherTool struct {
	weather domain.WeatherProvider
}

// NewCurrentWeatherTool creates a new instance of CurrentWeatherTool.
func NewCurrentWeatherTool(weather domain.WeatherProvider) CurrentWeatherTool {
	return CurrentWeatherTool{weather: weather}
}

func (CurrentWeatherTool) StatusMessage() string {
	return "🌤️ Checking the weather..."
}

func (CurrentWeatherTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "get_current_weather",
		Description: "Get the current weather, hourly temperature and sunrise/sunset for a coordinate.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"latitude":  {Type: "number", Description: "Latitude of the location"},
				"longitude": {Type: "number", Description: "Longitude of the location"},
			},
			Required: []string{"latitude", "longitude"},
		},
	}
}

func (t CurrentWeatherTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := unmarshalToolInput(args, &params); err != nil {
		return nil, err
	}
	return t.weather.CurrentWeather(ctx, params.Latitude, params.Longitude)
}
