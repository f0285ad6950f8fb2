package answer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-skill/internal/models"
)

func fp(v float64) *float64 { return &v }

func hourlyRecord(t time.Time, temp float64) models.WeatherRecord {
	return models.WeatherRecord{Time: t, Summary: "Klar", Icon: models.IconClearDay, Temperature: fp(temp)}
}

func TestSelectWeather_Currently(t *testing.T) {
	current := &models.WeatherRecord{Time: testNow, Summary: "Bewölkt", Icon: models.IconCloudy, Temperature: fp(12.4)}
	payload := &models.ForecastPayload{
		Currently: current,
		Hourly:    []models.WeatherRecord{hourlyRecord(testNow, 12)},
	}

	sel, err := SelectWeather(payload, models.TimeRange{Scale: models.ScaleCurrently})

	require.NoError(t, err)
	assert.Equal(t, current, sel.Current)
	assert.Empty(t, sel.Hours)
	assert.Empty(t, sel.Days)
}

func TestSelectWeather_CurrentlyMissing(t *testing.T) {
	payload := &models.ForecastPayload{Hourly: []models.WeatherRecord{hourlyRecord(testNow, 12)}}

	_, err := SelectWeather(payload, models.TimeRange{Scale: models.ScaleCurrently})

	assert.True(t, errors.Is(err, ErrNoData))
}

func TestSelectWeather_NilPayload(t *testing.T) {
	_, err := SelectWeather(nil, models.TimeRange{Scale: models.ScaleCurrently})

	assert.True(t, errors.Is(err, ErrNoData))
}

func TestSelectWeather_RangeBoundsAreInclusive(t *testing.T) {
	rng := models.TimeRange{
		Scale: models.ScaleHourly,
		From:  day(1, 11, 0, 0),
		To:    day(1, 14, 0, 0),
	}
	payload := &models.ForecastPayload{
		Hourly: []models.WeatherRecord{
			hourlyRecord(day(1, 10, 0, 0), 8),
			hourlyRecord(day(1, 11, 0, 0), 9),
			hourlyRecord(day(1, 12, 0, 0), 10),
			hourlyRecord(day(1, 14, 0, 0), 11),
			hourlyRecord(day(1, 15, 0, 0), 12),
		},
	}

	sel, err := SelectWeather(payload, rng)

	require.NoError(t, err)
	require.Len(t, sel.Hours, 3)
	assert.Equal(t, day(1, 11, 0, 0), sel.Hours[0].Time)
	assert.Equal(t, day(1, 14, 0, 0), sel.Hours[2].Time)
}

func TestSelectWeather_DailyScaleFiltersBothSeries(t *testing.T) {
	rng := models.TimeRange{
		Scale: models.ScaleDaily,
		From:  day(2, 0, 0, 0),
		To:    day(2, 23, 59, 59),
	}
	payload := &models.ForecastPayload{
		Hourly: []models.WeatherRecord{
			hourlyRecord(day(1, 22, 0, 0), 5),
			hourlyRecord(day(2, 8, 0, 0), 6),
			hourlyRecord(day(2, 16, 0, 0), 9),
		},
		Daily: []models.WeatherRecord{
			{Time: day(1, 0, 0, 0), Summary: "Klar"},
			{Time: day(2, 0, 0, 0), Summary: "Regen", TemperatureMin: fp(4), TemperatureMax: fp(10)},
			{Time: day(3, 0, 0, 0), Summary: "Klar"},
		},
	}

	sel, err := SelectWeather(payload, rng)

	require.NoError(t, err)
	assert.Len(t, sel.Hours, 2)
	require.Len(t, sel.Days, 1)
	assert.Equal(t, "Regen", sel.Days[0].Summary)
}

func TestSelectWeather_FilteringIsIdempotent(t *testing.T) {
	rng := models.TimeRange{
		Scale: models.ScaleHourly,
		From:  day(1, 6, 0, 0),
		To:    day(1, 10, 0, 0),
	}
	payload := &models.ForecastPayload{
		Hourly: []models.WeatherRecord{
			hourlyRecord(day(1, 4, 0, 0), 3),
			hourlyRecord(day(1, 7, 0, 0), 4),
			hourlyRecord(day(1, 9, 0, 0), 5),
		},
	}

	sel, err := SelectWeather(payload, rng)
	require.NoError(t, err)

	again, err := SelectWeather(&models.ForecastPayload{Hourly: sel.Hours}, rng)
	require.NoError(t, err)
	assert.Equal(t, sel.Hours, again.Hours)
}

func TestSelectWeather_EmptyHourlyWindow(t *testing.T) {
	rng := models.TimeRange{
		Scale: models.ScaleHourly,
		From:  day(5, 6, 0, 0),
		To:    day(5, 10, 0, 0),
	}
	payload := &models.ForecastPayload{
		Hourly: []models.WeatherRecord{hourlyRecord(day(1, 7, 0, 0), 4)},
	}

	_, err := SelectWeather(payload, rng)

	assert.True(t, errors.Is(err, ErrNoData))
}

func TestSelectWeather_DailyScaleNeedsDailyRecords(t *testing.T) {
	// The hourly window is populated but no daily record falls inside.
	rng := models.TimeRange{
		Scale: models.ScaleDaily,
		From:  day(2, 0, 0, 0),
		To:    day(2, 23, 59, 59),
	}
	payload := &models.ForecastPayload{
		Hourly: []models.WeatherRecord{hourlyRecord(day(2, 12, 0, 0), 7)},
		Daily:  []models.WeatherRecord{{Time: day(1, 0, 0, 0)}},
	}

	_, err := SelectWeather(payload, rng)

	assert.True(t, errors.Is(err, ErrNoData))
}
