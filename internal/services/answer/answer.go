package answer

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"weather-skill/internal/models"
	"weather-skill/internal/repositories"
	"weather-skill/internal/timezone"
	"weather-skill/pkg/observe"
)

// Service answers voice weather questions. It is stateless across requests:
// every call resolves independently from its inputs, so concurrent requests
// need no coordination.
type Service struct {
	forecasts repositories.ForecastRepository
	geocoder  repositories.Geocoder
	tz        timezone.Service
	l         *observe.Logger

	homeLat float64
	homeLon float64

	// now is injectable so the time-range resolution stays deterministic in
	// tests; production wiring uses time.Now.
	now func() time.Time
}

func NewService(
	forecasts repositories.ForecastRepository,
	geocoder repositories.Geocoder,
	tz timezone.Service,
	l *observe.Logger,
	homeLat, homeLon float64,
) *Service {
	return &Service{
		forecasts: forecasts,
		geocoder:  geocoder,
		tz:        tz,
		l:         l,
		homeLat:   homeLat,
		homeLon:   homeLon,
		now:       time.Now,
	}
}

// WithClock overrides the service's time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Answer runs the full pipeline for one intent: geocode the city (or fall
// back to the home coordinates), fetch the forecast, resolve the time phrase
// and generate the reply. Any failure is returned as an error; the caller is
// expected to log it and say nothing.
func (s *Service) Answer(ctx context.Context, question models.Question, city, phrase string) (string, error) {
	lat, lon := s.homeLat, s.homeLon
	if city != "" {
		var err error
		lat, lon, err = s.geocoder.Geocode(ctx, city)
		if err != nil {
			return "", errors.Wrapf(err, "geocode city %q", city)
		}
	}

	loc := s.location(lat, lon)

	payload, err := s.forecasts.FetchForecast(ctx, lat, lon, loc)
	if err != nil {
		return "", errors.Wrap(err, "fetch forecast")
	}

	rng := ResolveTimeRange(phrase, s.now().In(loc))

	s.l.Debug("resolved time range", map[string]any{
		"phrase": phrase,
		"scale":  rng.Scale,
		"prefix": rng.Prefix,
	})

	sel, err := SelectWeather(payload, rng)
	if err != nil {
		s.l.Warning("no weather info for requested range", map[string]any{
			"from": rng.From,
			"to":   rng.To,
		})
		return "", err
	}

	return Generate(question, rng, sel)
}

// location resolves the timezone of the queried coordinates so day boundaries
// and clock labels are local to the city. Lookup failures fall back to the
// server's zone.
func (s *Service) location(lat, lon float64) *time.Location {
	if s.tz == nil {
		return time.Local
	}

	name, err := s.tz.GetTimezone(lat, lon)
	if err != nil {
		s.l.Warning("timezone lookup failed", map[string]any{"lat": lat, "lon": lon, "err": err.Error()})
		return time.Local
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		s.l.Warning("unknown timezone name", map[string]any{"name": name, "err": err.Error()})
		return time.Local
	}

	return loc
}
