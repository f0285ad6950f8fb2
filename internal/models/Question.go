package models

// Question is the type of weather question asked by the voice intent.
type Question string

const (
	QuestionForecast    Question = "forecast"
	QuestionTemperature Question = "temperature"
	QuestionHasRain     Question = "has-rain"
	QuestionHasSun      Question = "has-sun"
	QuestionHasSnow     Question = "has-snow"
)

// ParseQuestion validates a raw question string from the transport layer.
func ParseQuestion(s string) (Question, bool) {
	switch q := Question(s); q {
	case QuestionForecast, QuestionTemperature, QuestionHasRain, QuestionHasSun, QuestionHasSnow:
		return q, true
	}
	return "", false
}

// Phenomenon parameterizes the presence-of questions.
type Phenomenon string

const (
	PhenomenonRain Phenomenon = "rain"
	PhenomenonSnow Phenomenon = "snow"
	PhenomenonSun  Phenomenon = "sun"
)
