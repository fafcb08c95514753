package tools

import (
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChillerStatusTool_Execute(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(repo *domain.MockTelemetryRepository)
		expectedJSON    string
	}{
		"found": {
			setExpectations: func(repo *domain.MockTelemetryRepository) {
				repo.EXPECT().LatestEquipmentMetrics(mock.Anything, "chiller_1").
					Return(domain.EquipmentMetrics{"kw": 512.5, "status_read": 1}, true, nil)
			},
			expectedJSON: `{"kw":512.5,"status_read":1}`,
		},
		"not-reported": {
			setExpectations: func(repo *domain.MockTelemetryRepository) {
				repo.EXPECT().LatestEquipmentMetrics(mock.Anything, "chiller_1").Return(nil, false, nil)
			},
			expectedJSON: `null`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTelemetryRepository(t)
			tt.setExpectations(repo)

			got, err := executeJSON(t, NewChillerStatusTool(repo), `{"chiller_id":"chiller_1"}`)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expectedJSON, got)
		})
	}
}

func TestEquipmentStatusTool_Execute(t *testing.T) {
	repo := domain.NewMockTelemetryRepository(t)
	repo.EXPECT().LatestEquipmentMetrics(mock.Anything, "pchp_1").Return(domain.EquipmentMetrics{"hz": 48.0}, true, nil)

	got, err := executeJSON(t, NewEquipmentStatusTool(repo), `{"equipment_id":"pchp_1"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hz":48}`, got)
}

func TestAllChillersTool_Execute(t *testing.T) {
	tests := map[string]struct {
		chillers     map[string]domain.EquipmentMetrics
		expectedJSON string
	}{
		"snapshot": {
			chillers:     map[string]domain.EquipmentMetrics{"chiller_1": {"kw": 500.0}},
			expectedJSON: `{"chiller_1":{"kw":500}}`,
		},
		"no-snapshot": {
			chillers:     nil,
			expectedJSON: `{}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTelemetryRepository(t)
			repo.EXPECT().LatestChillerMetrics(mock.Anything).Return(tt.chillers, nil)

			got, err := executeJSON(t, NewAllChillersTool(repo), `{}`)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expectedJSON, got)
		})
	}
}

func TestMockChartTool_Execute_Basic(t *testing.T) {
	got, err := executeJSON(t, NewMockChartTool(), `{}`)
	require.NoError(t, err)
	assert.Contains(t, got, `"type":"line"`)
	assert.Contains(t, got, `"Sample Chart"`)
}

func TestCurrentWeatherTool_Execute_Basic(t *testing.T) {
	weather := domain.NewMockWeatherProvider(t)
	weather.EXPECT().CurrentWeather(mock.Anything, 13.75, 100.5).
		Return(map[string]any{"current": map[string]any{"temperature_2m": 31.2}}, nil)

	got, err := executeJSON(t, NewCurrentWeatherTool(weather), `{"latitude":13.75,"longitude":100.5}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"current":{"temperature_2m":31.2}}`, got)
}
