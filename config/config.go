package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"weather-skill"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`
	AppZone    string `envconfig:"APP_ZONE" default:"dev"`
	Port       string `envconfig:"PORT" default:"8080"`
	SentryDSN  string `envconfig:"SENTRY_DSN" yaml:"sentry_dsn"`

	Home     HomeConfig     `yaml:"home"`
	Forecast ForecastConfig `yaml:"forecast"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
}

// HomeConfig is the fallback location used when an intent names no city. The
// coordinates are used when the city cannot be geocoded at startup.
type HomeConfig struct {
	City string  `envconfig:"HOME_CITY" yaml:"city"`
	Lat  float64 `envconfig:"HOME_LAT" yaml:"lat"`
	Lon  float64 `envconfig:"HOME_LON" yaml:"lon"`
}

type ForecastConfig struct {
	BaseURL        string  `envconfig:"FORECAST_BASE_URL" yaml:"base_url"`
	APIKey         string  `envconfig:"FORECAST_API_KEY" yaml:"api_key"`
	RateLimitRPS   float64 `envconfig:"FORECAST_RATE_LIMIT_RPS" yaml:"rate_limit_rps"`
	RateLimitBurst int     `envconfig:"FORECAST_RATE_LIMIT_BURST" yaml:"rate_limit_burst"`
}

type GeocoderConfig struct {
	BaseURL string `envconfig:"GEOCODER_BASE_URL" yaml:"base_url"`
}

func NewConfig() *Config {
	// YAML-backed fields get their fallbacks seeded here, not via envconfig
	// default tags: envconfig applies a default tag whenever the env var is
	// unset, which would stomp the value just read from the file.
	cnf := Config{
		Home: HomeConfig{
			City: "Hamburg",
			Lat:  53.5506,
			Lon:  9.9930,
		},
		Forecast: ForecastConfig{
			RateLimitRPS:   1,
			RateLimitBurst: 3,
		},
	}

	// Read from YAML file first
	if yamlData, err := os.ReadFile("config/config.yaml"); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			panic(fmt.Sprintf("Warning: failed to parse YAML config: %v\n", err))
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		panic(fmt.Errorf("error environment variable parsing: %w", err))
	}

	return &cnf
}
