package answer

import (
	"strings"
	"time"

	"weather-skill/internal/models"
)

var weekdayNames = []string{"montag", "dienstag", "mittwoch", "donnerstag", "freitag", "samstag", "sonntag"}

// daypart maps a named part of the day to its hour sub-range. A toHour of -1
// means 03:00 of the following day. The entries are checked in slice order,
// so "nachmittag" must precede "mittag" which it contains as a substring.
type daypart struct {
	keyword  string
	fromHour int
	toHour   int
}

var dayparts = []daypart{
	{"früh", 6, 10},
	{"vormittag", 9, 12},
	{"nachmittag", 14, 17},
	{"mittag", 11, 14},
	{"abend", 17, 22},
	{"nacht", 22, -1},
}

// timeRule pairs a phrase predicate with its range resolution. The rules are
// evaluated in order and the first match wins; the order is part of the
// contract because the predicates overlap ("nächste woche" must be claimed by
// the week rule before a bare keyword check could fire).
type timeRule struct {
	matches func(phrase string) bool
	resolve func(phrase string, now time.Time) models.TimeRange
}

var timeRules = []timeRule{
	{containsWeekday, weekdayRange},
	{isWeekend, weekendRange},
	{func(p string) bool { return strings.Contains(p, "woche") }, weekRange},
	{func(p string) bool { return p == "heute" }, func(p string, now time.Time) models.TimeRange {
		return dayRange(now, "Heute")
	}},
	{func(p string) bool { return p == "morgen" }, func(p string, now time.Time) models.TimeRange {
		return dayRange(now.AddDate(0, 0, 1), "Morgen")
	}},
	{func(p string) bool { return strings.HasSuffix(p, "bermorgen") }, func(p string, now time.Time) models.TimeRange {
		return dayRange(now.AddDate(0, 0, 2), "Übermorgen")
	}},
	{containsDaypart, daypartRange},
}

// ResolveTimeRange maps a free-text German time phrase to a TimeRange. It
// never fails: an empty or unrecognized phrase degrades to the current
// conditions. now must carry the location of the queried city so day
// boundaries are local.
func ResolveTimeRange(phrase string, now time.Time) models.TimeRange {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return currentRange()
	}

	for _, rule := range timeRules {
		if rule.matches(phrase) {
			return rule.resolve(phrase, now)
		}
	}

	return currentRange()
}

func currentRange() models.TimeRange {
	return models.TimeRange{Scale: models.ScaleCurrently, Prefix: "Jetzt"}
}

// weekdayIndex returns the day of week with Monday == 0, matching the order
// of weekdayNames.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func weekdayName(t time.Time) string {
	return weekdayNames[weekdayIndex(t)]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func containsWeekday(phrase string) bool {
	for _, name := range weekdayNames {
		if strings.Contains(phrase, name) {
			return true
		}
	}
	return false
}

func containsDaypart(phrase string) bool {
	for _, dp := range dayparts {
		if strings.Contains(phrase, dp.keyword) {
			return true
		}
	}
	return false
}

func isWeekend(phrase string) bool {
	if strings.Contains(phrase, "wochenende") {
		return true
	}
	return strings.Contains(phrase, "woche") && strings.Contains(phrase, "ende")
}

// weekdayRange resolves a named weekday to its next future occurrence. Today
// never counts: asking for Tuesday on a Tuesday yields next week's Tuesday.
func weekdayRange(phrase string, now time.Time) models.TimeRange {
	day := 0
	for i, name := range weekdayNames {
		if strings.Contains(phrase, name) {
			day = i
			break
		}
	}

	offset := day - weekdayIndex(now)
	if offset <= 0 {
		offset += 7
	}

	from := midnight(now).AddDate(0, 0, offset)

	return models.TimeRange{
		Scale:  models.ScaleDaily,
		From:   from,
		To:     endOfDay(from),
		Prefix: "am " + capitalize(weekdayNames[day]),
	}
}

// weekendRange covers Saturday 00:00 through Sunday 00:00 of the current
// week. The interval end deliberately stops at the start of Sunday: the daily
// record for Sunday (timestamped midnight) is still included.
func weekendRange(phrase string, now time.Time) models.TimeRange {
	from := midnight(now).AddDate(0, 0, 5-weekdayIndex(now))

	return models.TimeRange{
		Scale:  models.ScaleDaily,
		From:   from,
		To:     from.AddDate(0, 0, 1),
		Prefix: "Am Wochenende",
	}
}

func weekRange(phrase string, now time.Time) models.TimeRange {
	monday := midnight(now).AddDate(0, 0, -weekdayIndex(now))
	sunday := monday.AddDate(0, 0, 6)

	if strings.Contains(phrase, "nächste") {
		return models.TimeRange{
			Scale:  models.ScaleDaily,
			From:   monday.AddDate(0, 0, 7),
			To:     sunday.AddDate(0, 0, 7),
			Prefix: "Nächste Woche",
		}
	}

	return models.TimeRange{
		Scale:  models.ScaleDaily,
		From:   monday,
		To:     sunday,
		Prefix: "Diese Woche",
	}
}

func dayRange(t time.Time, prefix string) models.TimeRange {
	return models.TimeRange{
		Scale:  models.ScaleDaily,
		From:   midnight(t),
		To:     endOfDay(t),
		Prefix: prefix,
	}
}

// daypartRange narrows a base day to an hour sub-range. The base day is
// picked by substring priority übermorgen > morgen > heute.
func daypartRange(phrase string, now time.Time) models.TimeRange {
	switch {
	case strings.Contains(phrase, "bermorgen"):
		return subRange(phrase, now.AddDate(0, 0, 2), "Übermorgen")
	case strings.Contains(phrase, "morgen"):
		return subRange(phrase, now.AddDate(0, 0, 1), "Morgen")
	default:
		return subRange(phrase, now, "Heute")
	}
}

func subRange(phrase string, base time.Time, label string) models.TimeRange {
	for _, dp := range dayparts {
		if !strings.Contains(phrase, dp.keyword) {
			continue
		}

		from := time.Date(base.Year(), base.Month(), base.Day(), dp.fromHour, 0, 0, 0, base.Location())

		var to time.Time
		if dp.toHour == -1 {
			next := base.AddDate(0, 0, 1)
			to = time.Date(next.Year(), next.Month(), next.Day(), 3, 0, 0, 0, next.Location())
		} else {
			to = time.Date(base.Year(), base.Month(), base.Day(), dp.toHour, 0, 0, 0, base.Location())
		}

		return models.TimeRange{
			Scale:  models.ScaleHourly,
			From:   from,
			To:     to,
			Prefix: label + " " + dp.keyword,
		}
	}

	return currentRange()
}
