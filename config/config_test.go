package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(content), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestNewConfig_Defaults(t *testing.T) {
	cnf := NewConfig()

	assert.Equal(t, "weather-skill", cnf.AppName)
	assert.Equal(t, "dev", cnf.AppZone)
	assert.Equal(t, "8080", cnf.Port)

	assert.Equal(t, "Hamburg", cnf.Home.City)
	assert.Equal(t, 53.5506, cnf.Home.Lat)
	assert.Equal(t, 9.9930, cnf.Home.Lon)

	assert.Equal(t, 1.0, cnf.Forecast.RateLimitRPS)
	assert.Equal(t, 3, cnf.Forecast.RateLimitBurst)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOME_CITY", "Berlin")
	t.Setenv("HOME_LAT", "52.5170")
	t.Setenv("FORECAST_API_KEY", "secret-key")
	t.Setenv("FORECAST_RATE_LIMIT_RPS", "0.5")

	cnf := NewConfig()

	assert.Equal(t, "9090", cnf.Port)
	assert.Equal(t, "Berlin", cnf.Home.City)
	assert.Equal(t, 52.5170, cnf.Home.Lat)
	assert.Equal(t, "secret-key", cnf.Forecast.APIKey)
	assert.Equal(t, 0.5, cnf.Forecast.RateLimitRPS)
}

func TestNewConfig_YAMLValuesSurviveEnvProcessing(t *testing.T) {
	// Values that differ from the built-in fallbacks must come through
	// unchanged when no env var is set.
	writeConfigFile(t, `
home:
  city: "Berlin"
  lat: 52.5170
  lon: 13.3888

forecast:
  api_key: "file-key"
  rate_limit_rps: 0.25
  rate_limit_burst: 5
`)

	cnf := NewConfig()

	assert.Equal(t, "Berlin", cnf.Home.City)
	assert.Equal(t, 52.5170, cnf.Home.Lat)
	assert.Equal(t, 13.3888, cnf.Home.Lon)
	assert.Equal(t, "file-key", cnf.Forecast.APIKey)
	assert.Equal(t, 0.25, cnf.Forecast.RateLimitRPS)
	assert.Equal(t, 5, cnf.Forecast.RateLimitBurst)
}

func TestNewConfig_EnvironmentOverridesYAML(t *testing.T) {
	writeConfigFile(t, `
home:
  city: "Berlin"
`)
	t.Setenv("HOME_CITY", "München")

	cnf := NewConfig()

	assert.Equal(t, "München", cnf.Home.City)
	// Untouched fields keep their fallbacks.
	assert.Equal(t, 53.5506, cnf.Home.Lat)
}
