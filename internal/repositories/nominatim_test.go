package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimGeocoder_Geocode(t *testing.T) {
	var gotQuery, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"lat": "53.550341", "lon": "10.000654", "display_name": "Hamburg, Deutschland"}]`)
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, testLogger())

	lat, lon, err := geocoder.Geocode(context.Background(), "Hamburg")

	require.NoError(t, err)
	assert.Equal(t, "Hamburg", gotQuery)
	assert.Equal(t, "weather-skill", gotAgent)
	assert.InDelta(t, 53.550341, lat, 1e-9)
	assert.InDelta(t, 10.000654, lon, 1e-9)
}

func TestNominatimGeocoder_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, testLogger())

	_, _, err := geocoder.Geocode(context.Background(), "Atlantis")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestNominatimGeocoder_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, testLogger())

	_, _, err := geocoder.Geocode(context.Background(), "Hamburg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNominatimGeocoder_InvalidCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"lat": "not-a-number", "lon": "10.0"}]`)
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, testLogger())

	_, _, err := geocoder.Geocode(context.Background(), "Hamburg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}
