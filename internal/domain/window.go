package domain

import "time"

// TimeWindow свободное временное окно, производное значение (не хранится в БД)
// Полуоткрытый интервал [Start, End), всегда Start < End
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the window
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
