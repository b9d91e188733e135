package domain

import "time"

// CancellationPolicy правило бесплатной отмены для бизнеса
// На бизнес действует не более одной политики; отсутствие политики
// эквивалентно FreeBeforeMinutes = 0
type CancellationPolicy struct {
	ID                int64
	BusinessID        int64
	FreeBeforeMinutes int
	PenaltyType       string
	PenaltyAmount     float64
	CreatedAt         time.Time
}

// Classify классифицирует отмену по запасу времени до начала бронирования
// FREE, если до начала осталось не меньше FreeBeforeMinutes минут, иначе LATE
func (p *CancellationPolicy) Classify(startTime, now time.Time) CancellationClass {
	return ClassifyCancellation(startTime, now, p.FreeBeforeMinutes)
}

// ClassifyCancellation классификация отмены без политики
// freeBeforeMinutes = 0 означает: любая отмена до начала - FREE
func ClassifyCancellation(startTime, now time.Time, freeBeforeMinutes int) CancellationClass {
	minutesBefore := startTime.Sub(now).Minutes()
	if minutesBefore >= float64(freeBeforeMinutes) {
		return CancellationFree
	}
	return CancellationLate
}
