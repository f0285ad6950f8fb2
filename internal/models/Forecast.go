package models

// ForecastPayload is the multi-horizon forecast for one location, as fetched
// by a forecast repository. Hourly and Daily are sorted ascending by time.
type ForecastPayload struct {
	Currently *WeatherRecord
	Hourly    []WeatherRecord
	Daily     []WeatherRecord
}

// WeatherSelection is the slice of a payload relevant to one resolved time
// range. Current is set for instantaneous queries; for ranged queries Hours
// and Days hold the hourly and daily series filtered to the range. Days is
// kept even at hourly granularity so handlers can recover the day identity.
type WeatherSelection struct {
	Current *WeatherRecord
	Hours   []WeatherRecord
	Days    []WeatherRecord
}
