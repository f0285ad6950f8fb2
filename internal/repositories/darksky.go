package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"weather-skill/internal/models"
	"weather-skill/pkg/observe"
)

const (
	DarkSkyBaseURL = "https://api.darksky.net/forecast"

	darkSkyRequestTimeout = 10 * time.Second
)

// DarkSkyRepository fetches the forecast payload from a DarkSky-compatible
// API: current conditions plus hourly and daily series in one response.
type DarkSkyRepository struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	l          *observe.Logger
}

func NewDarkSkyRepository(baseURL, apiKey string, l *observe.Logger) *DarkSkyRepository {
	if baseURL == "" {
		baseURL = DarkSkyBaseURL
	}

	return &DarkSkyRepository{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: darkSkyRequestTimeout,
		},
		l: l,
	}
}

func (d *DarkSkyRepository) Name() string {
	return "darksky"
}

type darkSkyRecord struct {
	Time              int64    `json:"time"`
	Summary           string   `json:"summary"`
	Icon              string   `json:"icon"`
	Temperature       *float64 `json:"temperature"`
	TemperatureMin    *float64 `json:"temperatureMin"`
	TemperatureMax    *float64 `json:"temperatureMax"`
	PrecipType        string   `json:"precipType"`
	PrecipProbability *float64 `json:"precipProbability"`
}

type darkSkyResponse struct {
	Currently *darkSkyRecord `json:"currently"`
	Hourly    struct {
		Data []darkSkyRecord `json:"data"`
	} `json:"hourly"`
	Daily struct {
		Data []darkSkyRecord `json:"data"`
	} `json:"daily"`
}

func (d *DarkSkyRepository) FetchForecast(ctx context.Context, lat, lon float64, loc *time.Location) (*models.ForecastPayload, error) {
	url := fmt.Sprintf("%s/%s/%f,%f?units=si&lang=de&exclude=flags,alerts,minutely&extend=hourly",
		d.baseURL, d.apiKey, lat, lon)

	d.l.Info("making darksky API request", map[string]any{
		"lat": lat,
		"lon": lon,
	})

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept-Encoding", "deflate, gzip")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	d.l.Info("received darksky API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response darkSkyResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if response.Currently == nil && len(response.Hourly.Data) == 0 && len(response.Daily.Data) == 0 {
		return nil, fmt.Errorf("no forecast data available")
	}

	d.l.Info("parsed darksky API response", map[string]any{
		"hours": len(response.Hourly.Data),
		"days":  len(response.Daily.Data),
	})

	return buildPayload(response, loc), nil
}

func buildPayload(response darkSkyResponse, loc *time.Location) *models.ForecastPayload {
	payload := &models.ForecastPayload{
		Hourly: recordsIn(response.Hourly.Data, loc),
		Daily:  recordsIn(response.Daily.Data, loc),
	}

	if response.Currently != nil {
		cur := toRecord(*response.Currently, loc)
		payload.Currently = &cur
	}

	return payload
}

func recordsIn(raw []darkSkyRecord, loc *time.Location) []models.WeatherRecord {
	records := make([]models.WeatherRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, toRecord(r, loc))
	}
	return records
}

func toRecord(r darkSkyRecord, loc *time.Location) models.WeatherRecord {
	return models.WeatherRecord{
		Time:              time.Unix(r.Time, 0).In(loc),
		Summary:           r.Summary,
		Icon:              r.Icon,
		Temperature:       r.Temperature,
		TemperatureMin:    r.TemperatureMin,
		TemperatureMax:    r.TemperatureMax,
		PrecipType:        r.PrecipType,
		PrecipProbability: r.PrecipProbability,
	}
}
