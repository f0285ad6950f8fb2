package models

import "time"

// Scale is the granularity of a resolved time range.
type Scale string

const (
	ScaleCurrently Scale = "currently"
	ScaleHourly    Scale = "hourly"
	ScaleDaily     Scale = "daily"
)

// TimeRange is the result of resolving a spoken time phrase. From and To are
// zero when Scale is ScaleCurrently; otherwise the interval is closed on both
// ends. Prefix is the human-readable label spliced into generated sentences
// ("Morgen nachmittag", "Diese Woche").
type TimeRange struct {
	Scale  Scale
	From   time.Time
	To     time.Time
	Prefix string
}

// Contains reports whether t falls inside the closed interval [From, To].
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}
