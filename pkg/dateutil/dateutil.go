package dateutil

import "time"

const DayFormat = "2006-01-02"

// Day truncates a timestamp to its UTC calendar-day boundary. All streak and
// daily-cap arithmetic goes through this boundary.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DayString(t time.Time) string {
	return Day(t).Format(DayFormat)
}

func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b. It is negative
// if b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// CurrentWeek returns the start of the ISO week containing current.
func CurrentWeek(current time.Time) time.Time {
	day := Day(current)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	return day.AddDate(0, 0, 1-weekday)
}

// CurrentMonth returns the start of the month containing current.
func CurrentMonth(current time.Time) time.Time {
	day := Day(current)
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}
