package domain

import "context"

// WeatherProvider returns current weather conditions for a coordinate.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, latitude, longitude float64) (map[string]any, error)
}
