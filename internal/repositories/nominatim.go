package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-skill/pkg/observe"
)

// API docs: https://nominatim.org/release-docs/develop/api/Search/
const (
	NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

	// Nominatim's usage policy requires an identifying user agent.
	nominatimUserAgent = "weather-skill"

	nominatimRequestTimeout = 10 * time.Second
)

// NominatimGeocoder resolves city names to coordinates via the OpenStreetMap
// Nominatim search endpoint.
type NominatimGeocoder struct {
	baseURL    string
	httpClient *http.Client
	l          *observe.Logger
}

func NewNominatimGeocoder(baseURL string, l *observe.Logger) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = NominatimBaseURL
	}

	return &NominatimGeocoder{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: nominatimRequestTimeout,
		},
		l: l,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, city string) (float64, float64, error) {
	u, err := url.Parse(g.baseURL)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, 0, fmt.Errorf("geocoding returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no coordinates found for %q", city)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	g.l.Debug("geocoded city", map[string]any{
		"city":  city,
		"place": results[0].DisplayName,
		"lat":   lat,
		"lon":   lon,
	})

	return lat, lon, nil
}
