package models

import "time"

// Icon values used by the forecast payload. Only the ones the response
// templates inspect are named here; other values pass through untouched.
const (
	IconClearDay        = "clear-day"
	IconPartlyCloudyDay = "partly-cloudy-day"
	IconCloudy          = "cloudy"
	IconRain            = "rain"
	IconSnow            = "snow"
	IconHail            = "hail"
	IconThunderstorm    = "thunderstorm"
)

// WeatherRecord is one sample of the forecast payload. Temperature is set on
// current and hourly records, TemperatureMin/Max on daily records; pointers
// distinguish absent fields from zero degrees.
type WeatherRecord struct {
	Time              time.Time
	Summary           string
	Icon              string
	Temperature       *float64
	TemperatureMin    *float64
	TemperatureMax    *float64
	PrecipType        string
	PrecipProbability *float64
}
