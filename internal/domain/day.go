package domain

import "time"

// DayOf возвращает полночь UTC календарного дня, которому принадлежит instant
// День считается по UTC независимо от offset в исходном значении
func DayOf(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds возвращает границы дня UTC: полуоткрытый интервал [start, end)
func DayBounds(date time.Time) (start, end time.Time) {
	start = DayOf(date)
	return start, start.Add(24 * time.Hour)
}
