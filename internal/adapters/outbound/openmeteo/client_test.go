package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CurrentWeather(t *testing.T) {
	tests := map[string]struct {
		handler   http.HandlerFunc
		expected  map[string]any
		expectErr bool
	}{
		"success": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/forecast", r.URL.Path)
				q := r.URL.Query()
				assert.Equal(t, "13.75", q.Get("latitude"))
				assert.Equal(t, "100.5", q.Get("longitude"))
				assert.Equal(t, "temperature_2m", q.Get("current"))
				assert.Equal(t, "sunrise,sunset", q.Get("daily"))
				assert.Equal(t, "auto", q.Get("timezone"))
				_, _ = w.Write([]byte(`{"current":{"temperature_2m":33.1}}`))
			},
			expected: map[string]any{"current": map[string]any{"temperature_2m": 33.1}},
		},
		"bad-status": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			expectErr: true,
		},
		"bad-body": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, server.Client())
			got, err := client.CurrentWeather(context.Background(), 13.75, 100.5)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitClient{HttpClient: http.DefaultClient, BaseURL: "http://localhost"}.Initialize(context.Background())
	require.NoError(t, err)

	_, err = depend.Resolve[domain.WeatherProvider]()
	assert.NoError(t, err)
}
