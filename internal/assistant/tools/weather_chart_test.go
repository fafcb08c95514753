package tools

import (
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCurrentWeatherTool_Execute(t *testing.T) {
	tests := map[string]struct {
		args            string
		setExpectations func(weather *domain.MockWeatherProvider)
		expectedJSON    string
		expectedErr     string
	}{
		"forecast": {
			args: `{"latitude":13.75,"longitude":100.5}`,
			setExpectations: func(weather *domain.MockWeatherProvider) {
				weather.EXPECT().CurrentWeather(mock.Anything, 13.75, 100.5).
					Return(map[string]any{"current": map[string]any{"temperature_2m": 33.1}}, nil)
			},
			expectedJSON: `{"current":{"temperature_2m":33.1}}`,
		},
		"provider-error": {
			args: `{"latitude":13.75,"longitude":100.5}`,
			setExpectations: func(weather *domain.MockWeatherProvider) {
				weather.EXPECT().CurrentWeather(mock.Anything, 13.75, 100.5).
					Return(nil, domain.NewUnavailableErr("weather service unavailable", assert.AnError))
			},
			expectedErr: "weather service unavailable",
		},
		"unknown-field": {
			args:        `{"latitude":13.75,"longitude":100.5,"city":"Bangkok"}`,
			expectedErr: `failed to parse tool input: json: unknown field "city"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			weather := domain.NewMockWeatherProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(weather)
			}

			got, err := executeJSON(t, NewCurrentWeatherTool(weather), tt.args)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.expectedJSON, got)
		})
	}
}

func TestMockChartTool_Execute(t *testing.T) {
	tool := NewMockChartTool()
	assert.Equal(t, "generate_mock_chart", tool.Definition().Name)

	got, err := executeJSON(t, tool, `{}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title":{"text":"Sample Chart"},
		"xAxis":{"type":"category","data":["Mon","Tue","Wed","Thu","Fri","Sat","Sun"]},
		"yAxis":{"type":"value"},
		"series":[{"data":[150,230,224,218,135,147,260],"type":"line"}]
	}`, got)

	_, err = executeJSON(t, tool, `{"points":3}`)
	var invalid *domain.InvalidArgumentsErr
	assert.ErrorAs(t, err, &invalid)
}
