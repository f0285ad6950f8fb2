package answer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"

	"weather-skill/internal/models"
)

// Precipitation probability thresholds: below the lower bound the answer is
// negative, between the two it gets a "vermutlich" qualifier.
const (
	probabilityFloor   = 0.3
	probabilityCertain = 0.75
)

// Generate builds the spoken German reply for one question type.
func Generate(question models.Question, rng models.TimeRange, sel models.WeatherSelection) (string, error) {
	switch question {
	case models.QuestionForecast:
		return generateForecast(rng, sel)
	case models.QuestionTemperature:
		return generateTemperature(rng, sel)
	case models.QuestionHasRain:
		return generateHas(models.PhenomenonRain, rng, sel)
	case models.QuestionHasSun:
		return generateHas(models.PhenomenonSun, rng, sel)
	case models.QuestionHasSnow:
		return generateHas(models.PhenomenonSnow, rng, sel)
	}
	return "", errors.Wrapf(ErrUnknownQuestion, "%q", question)
}

func roundTemp(v float64) int {
	return int(math.Round(v))
}

// summaryOf normalizes the trailing dot of a record's summary text. Summaries
// are spliced mid-sentence with removeDot and end sentences without it.
func summaryOf(r models.WeatherRecord, removeDot bool) string {
	s := r.Summary
	if removeDot {
		return strings.TrimSuffix(s, ".")
	}
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}

func clockLabel(t time.Time) string {
	return t.Format("15:04 Uhr")
}

// generateForecast answers the general "wie wird das Wetter" question.
func generateForecast(rng models.TimeRange, sel models.WeatherSelection) (string, error) {
	switch rng.Scale {
	case models.ScaleCurrently:
		cur := sel.Current
		if cur == nil || cur.Temperature == nil {
			return "", errors.Wrap(ErrNoData, "current conditions incomplete")
		}
		return fmt.Sprintf("Das Wetter ist aktuell %s Temperatur liegt bei %d Grad.",
			summaryOf(*cur, false), roundTemp(*cur.Temperature)), nil
	case models.ScaleDaily:
		return forecastForDays(rng, sel.Days)
	default:
		return forecastForHours(rng, sel.Hours)
	}
}

func forecastForDays(rng models.TimeRange, days []models.WeatherRecord) (string, error) {
	low, high, err := dailyTemperatureBounds(days)
	if err != nil {
		return "", err
	}

	if len(days) == 1 {
		return fmt.Sprintf("Wetter %s: %s Temperaturen zwischen %d und %d Grad.",
			rng.Prefix, summaryOf(days[0], false), low, high), nil
	}

	if len(days) == 2 {
		day1 := capitalize(weekdayName(days[0].Time))
		day2 := capitalize(weekdayName(days[1].Time))
		temps := fmt.Sprintf(" Die Temperaturen liegen zwischen %d und %d Grad.", low, high)

		if days[0].Summary == days[1].Summary {
			return "Wetter am " + day1 + " und " + day2 + ": " + summaryOf(days[0], false) + " " + temps, nil
		}
		return "Wetter am " + day1 + ": " + summaryOf(days[0], false) + " " +
			day2 + " " + summaryOf(days[1], false) + temps, nil
	}

	// Longer spans ("diese Woche") lead with the first day and append one
	// clause per phenomenon observed on the remaining days.
	res := "Wetter am " + capitalize(weekdayName(days[0].Time)) + ": " + summaryOf(days[0], false)
	res += phenomenonClause("Regen", iconDays(days, models.IconRain))
	res += phenomenonClause("Schnee", iconDays(days, models.IconSnow))
	res += phenomenonClause("Gewitter", iconDays(days, models.IconThunderstorm))
	res += fmt.Sprintf(" Temperaturen zwischen %d und %d Grad.", low, high)

	return res, nil
}

// iconDays collects the capitalized weekday names of all days beyond the
// first whose icon matches.
func iconDays(days []models.WeatherRecord, icon string) []string {
	var names []string
	for _, d := range days {
		if d.Icon == icon && !d.Time.Equal(days[0].Time) {
			names = append(names, capitalize(weekdayName(d.Time)))
		}
	}
	return names
}

// phenomenonClause renders " Vermutlich Regen am Dienstag." or, for several
// days, " Vermutlich Regen am Dienstag, Mittwoch und Freitag."
func phenomenonClause(what string, days []string) string {
	switch len(days) {
	case 0:
		return ""
	case 1:
		return " Vermutlich " + what + " am " + days[0] + "."
	}
	return " Vermutlich " + what + " am " + strings.Join(days[:len(days)-1], ", ") + " und " + days[len(days)-1] + "."
}

func forecastForHours(rng models.TimeRange, hours []models.WeatherRecord) (string, error) {
	low, high, err := hourlyTemperatureBounds(hours)
	if err != nil {
		return "", err
	}

	first := hours[0]
	last := hours[len(hours)-1]

	if first.Summary == last.Summary {
		return fmt.Sprintf("Wetter %s: %s Temperaturen zwischen %d und %d Grad.",
			rng.Prefix, summaryOf(first, false), low, high), nil
	}

	return fmt.Sprintf("Wetter %s: %s bis %s Temperaturen zwischen %d und %d Grad.",
		rng.Prefix, summaryOf(first, true), summaryOf(last, false), low, high), nil
}

func generateTemperature(rng models.TimeRange, sel models.WeatherSelection) (string, error) {
	if rng.Scale == models.ScaleCurrently {
		if sel.Current == nil || sel.Current.Temperature == nil {
			return "", errors.Wrap(ErrNoData, "current temperature missing")
		}
		return fmt.Sprintf("Es sind gerade %d Grad.", roundTemp(*sel.Current.Temperature)), nil
	}

	if len(sel.Hours) == 1 {
		if sel.Hours[0].Temperature == nil {
			return "", errors.Wrap(ErrNoData, "hourly temperature missing")
		}
		return fmt.Sprintf("%s wird es etwa %d Grad warm.", rng.Prefix, roundTemp(*sel.Hours[0].Temperature)), nil
	}

	low, high, err := hourlyTemperatureBounds(sel.Hours)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s wird es zwischen %d und %d Grad warm.", rng.Prefix, low, high), nil
}

// generateHas answers the presence questions for rain, snow and sun.
func generateHas(what models.Phenomenon, rng models.TimeRange, sel models.WeatherSelection) (string, error) {
	if rng.Scale == models.ScaleCurrently {
		if sel.Current == nil {
			return "", errors.Wrap(ErrNoData, "current conditions missing")
		}
		if what == models.PhenomenonSun {
			return sunNow(*sel.Current), nil
		}
		return precipitationNow(what, *sel.Current), nil
	}

	if what == models.PhenomenonSun {
		return sunInRange(rng, sel), nil
	}
	return precipitationInRange(what, rng, sel)
}

func sunNow(cur models.WeatherRecord) string {
	if cur.Icon == models.IconClearDay {
		return "Ja, es ist gerade sonnig."
	}

	if strings.Contains(cur.Icon, "cloudy") {
		qualifier := ""
		if cur.Icon != models.IconCloudy {
			qualifier = "eher "
		}
		return "Nein, ist ist gerade " + qualifier + "bewölkt."
	}

	return "Nein, ich denke nicht."
}

func precipitationNow(what models.Phenomenon, cur models.WeatherRecord) string {
	verb := "schneit"
	if what == models.PhenomenonRain {
		verb = "regnet"
	}

	if cur.PrecipType != string(what) || cur.PrecipProbability == nil || *cur.PrecipProbability < probabilityFloor {
		return "Ich denke nicht, dass es gerade " + verb + "."
	}

	if *cur.PrecipProbability < probabilityCertain {
		return "Ja, es " + verb + " gerade vermutlich."
	}

	return "Ja, es " + verb + " gerade."
}

func sunInRange(rng models.TimeRange, sel models.WeatherSelection) string {
	clear := recordsWithIcon(sel.Hours, models.IconClearDay)
	partly := recordsWithIcon(sel.Hours, models.IconPartlyCloudyDay)

	if len(clear) == 0 && len(partly) == 0 {
		return "Nein, ich denke nicht."
	}

	var w models.WeatherRecord
	var tail string
	if len(clear) > 0 {
		w, tail = clear[0], "sonnig."
	} else {
		w, tail = partly[0], "ein bisschen Sonne geben."
	}

	when := clockLabel(w.Time)

	if rng.Scale == models.ScaleHourly {
		return "Gegen " + when + " wird es " + tail
	}
	if len(sel.Days) == 1 {
		return rng.Prefix + " wird es gegen " + when + " " + tail
	}
	return "Am " + capitalize(weekdayName(w.Time)) + " wird es gegen " + when + " " + tail
}

func precipitationInRange(what models.Phenomenon, rng models.TimeRange, sel models.WeatherSelection) (string, error) {
	rain := recordsWithPrecipitation(sel.Hours, models.IconRain, what)
	hail := recordsWithPrecipitation(sel.Hours, models.IconHail, what)
	thunder := recordsWithPrecipitation(sel.Hours, models.IconThunderstorm, what)

	if len(rain) == 0 && len(hail) == 0 && len(thunder) == 0 {
		return "Nein, ich denke nicht.", nil
	}

	var w models.WeatherRecord
	var tail string
	switch {
	case len(rain) > 0:
		w, tail = rain[0], "regnen."
	case len(hail) > 0:
		w, tail = hail[0], "hageln."
	default:
		w, tail = thunder[0], "Gewitter geben."
	}

	if w.PrecipProbability == nil {
		return "", errors.Wrap(ErrNoData, "precipitation probability missing")
	}
	if *w.PrecipProbability < probabilityFloor {
		return "Nein, ich denke nicht.", nil
	}

	qualifier := ""
	if *w.PrecipProbability < probabilityCertain {
		qualifier = " vermutlich"
	}

	when := clockLabel(w.Time)

	if rng.Scale == models.ScaleHourly {
		return "Gegen " + when + " wird es " + tail, nil
	}
	if len(sel.Days) == 1 {
		return rng.Prefix + " wird es " + tail, nil
	}
	return "Am " + capitalize(weekdayName(w.Time)) + " wird es" + qualifier + " gegen " + when + " " + tail, nil
}

func recordsWithIcon(records []models.WeatherRecord, icon string) []models.WeatherRecord {
	var out []models.WeatherRecord
	for _, r := range records {
		if r.Icon == icon {
			out = append(out, r)
		}
	}
	return out
}

// recordsWithPrecipitation matches either the icon or an explicit precipType
// of the asked phenomenon with a probability above the floor.
func recordsWithPrecipitation(records []models.WeatherRecord, icon string, what models.Phenomenon) []models.WeatherRecord {
	var out []models.WeatherRecord
	for _, r := range records {
		byType := r.PrecipType == string(what) && r.PrecipProbability != nil && *r.PrecipProbability > probabilityFloor
		if r.Icon == icon || byType {
			out = append(out, r)
		}
	}
	return out
}

func hourlyTemperatureBounds(hours []models.WeatherRecord) (int, int, error) {
	if len(hours) == 0 {
		return 0, 0, errors.Wrap(ErrNoData, "no hourly records")
	}

	low := math.Inf(1)
	high := math.Inf(-1)
	for _, h := range hours {
		if h.Temperature == nil {
			return 0, 0, errors.Wrap(ErrNoData, "hourly temperature missing")
		}
		low = math.Min(low, *h.Temperature)
		high = math.Max(high, *h.Temperature)
	}

	return roundTemp(low), roundTemp(high), nil
}

func dailyTemperatureBounds(days []models.WeatherRecord) (int, int, error) {
	if len(days) == 0 {
		return 0, 0, errors.Wrap(ErrNoData, "no daily records")
	}

	low := math.Inf(1)
	high := math.Inf(-1)
	for _, d := range days {
		if d.TemperatureMin == nil || d.TemperatureMax == nil {
			return 0, 0, errors.Wrap(ErrNoData, "daily temperature bounds missing")
		}
		low = math.Min(low, *d.TemperatureMin)
		high = math.Max(high, *d.TemperatureMax)
	}

	return roundTemp(low), roundTemp(high), nil
}
