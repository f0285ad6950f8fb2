package repositories

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"weather-skill/internal/models"
)

// RateLimitedForecastRepository wraps a ForecastRepository with outbound rate
// limiting, so bursts of voice intents cannot exhaust the forecast API quota.
type RateLimitedForecastRepository struct {
	repo    ForecastRepository
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedForecastRepository limits the wrapped source to rps requests
// per second (fractional values allowed) with the given burst size.
func NewRateLimitedForecastRepository(repo ForecastRepository, rps float64, burst int) *RateLimitedForecastRepository {
	return &RateLimitedForecastRepository{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [rate limited]", repo.Name()),
	}
}

func (r *RateLimitedForecastRepository) Name() string {
	return r.name
}

// FetchForecast waits for rate limiter permission, then delegates.
func (r *RateLimitedForecastRepository) FetchForecast(ctx context.Context, lat, lon float64, loc *time.Location) (*models.ForecastPayload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	return r.repo.FetchForecast(ctx, lat, lon, loc)
}
