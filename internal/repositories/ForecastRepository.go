package repositories

import (
	"context"
	"time"

	"weather-skill/config"
	"weather-skill/internal/models"
	"weather-skill/pkg/observe"
)

// ForecastRepository fetches the multi-horizon forecast for a coordinate
// pair. Record timestamps are converted into loc so the core pipeline works
// in the queried city's local time.
type ForecastRepository interface {
	Name() string
	FetchForecast(ctx context.Context, lat, lon float64, loc *time.Location) (*models.ForecastPayload, error)
}

// Geocoder resolves a spoken city name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, city string) (lat, lon float64, err error)
}

// InitForecastRepository builds the configured forecast source, wrapped with
// outbound rate limiting when a positive rate is configured.
func InitForecastRepository(cfg *config.Config, l *observe.Logger) ForecastRepository {
	var repo ForecastRepository = NewDarkSkyRepository(cfg.Forecast.BaseURL, cfg.Forecast.APIKey, l)

	if cfg.Forecast.RateLimitRPS > 0 {
		repo = NewRateLimitedForecastRepository(repo, cfg.Forecast.RateLimitRPS, cfg.Forecast.RateLimitBurst)
	}

	return repo
}
