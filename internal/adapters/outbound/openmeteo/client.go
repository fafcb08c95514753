package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Client reads the current weather from the Open-Meteo forecast API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client that sends requests to baseURL using httpClient.
func NewClient(baseURL string, httpClient *http.Client) Client {
	return Client{baseURL: baseURL, client: httpClient}
}

// CurrentWeather returns the forecast document for the given coordinates.
func (c Client) CurrentWeather(ctx context.Context, latitude, longitude float64) (map[string]any, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Float64("latitude", latitude),
		attribute.Float64("longitude", longitude),
	))
	defer span.End()

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current", "temperature_2m")
	q.Set("hourly", "temperature_2m")
	q.Set("daily", "sunrise,sunset")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(spanCtx, http.MethodGet, c.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewUnavailableErr("weather service unavailable", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("weather service returned status %d", resp.StatusCode)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	var forecast map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&forecast); telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}
	return forecast, nil
}

// InitClient registers the Open-Meteo client as the domain.WeatherProvider.
type InitClient struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"OPEN_METEO_BASE_URL" default:"https://api.open-meteo.com"`
}

// Initialize registers the client in the dependency container.
func (i InitClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.WeatherProvider](NewClient(i.BaseURL, i.HttpClient))
	return ctx, nil
}
