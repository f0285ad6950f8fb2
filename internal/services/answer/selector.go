package answer

import (
	"github.com/pkg/errors"

	"weather-skill/internal/models"
)

var (
	// ErrNoData marks a payload that cannot answer the resolved range. The
	// caller logs it and stays silent; no fallback utterance is spoken.
	ErrNoData = errors.New("no weather data for requested range")

	// ErrUnknownQuestion marks an intent type the generator has no handler for.
	ErrUnknownQuestion = errors.New("unrecognized question type")
)

// SelectWeather extracts the records relevant to the resolved range. For
// ranged scales both the hourly and the daily series are filtered, source
// order preserved; temperature and presence handlers read the hourly slice at
// every ranged scale, so an empty hourly window is an error even for daily
// queries.
func SelectWeather(payload *models.ForecastPayload, rng models.TimeRange) (models.WeatherSelection, error) {
	if payload == nil {
		return models.WeatherSelection{}, errors.Wrap(ErrNoData, "payload missing")
	}

	if rng.Scale == models.ScaleCurrently {
		if payload.Currently == nil {
			return models.WeatherSelection{}, errors.Wrap(ErrNoData, "current conditions missing from payload")
		}
		return models.WeatherSelection{Current: payload.Currently}, nil
	}

	hours := filterByRange(payload.Hourly, rng)
	days := filterByRange(payload.Daily, rng)

	if len(hours) == 0 {
		return models.WeatherSelection{}, errors.Wrapf(ErrNoData, "no hourly records between %s and %s", rng.From, rng.To)
	}
	if rng.Scale == models.ScaleDaily && len(days) == 0 {
		return models.WeatherSelection{}, errors.Wrapf(ErrNoData, "no daily records between %s and %s", rng.From, rng.To)
	}

	return models.WeatherSelection{Hours: hours, Days: days}, nil
}

func filterByRange(records []models.WeatherRecord, rng models.TimeRange) []models.WeatherRecord {
	var out []models.WeatherRecord
	for _, r := range records {
		if rng.Contains(r.Time) {
			out = append(out, r)
		}
	}
	return out
}
