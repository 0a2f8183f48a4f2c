package dates

import "time"

const (
	DateFormat = "2006-01-02"
)

// Day returns the calendar day of t in t's own location.
func Day(t time.Time) string {
	return t.Format(DateFormat)
}

func StringToDate(from string, dateFormat string) (time.Time, error) {
	return time.Parse(dateFormat, from)
}

func DateToString(from time.Time, dateFormat string) string {
	return from.Format(dateFormat)
}

// AddDays moves t forward by whole 24h days.
func AddDays(t time.Time, days int) time.Time {
	return t.Add(time.Duration(days) * 24 * time.Hour)
}
