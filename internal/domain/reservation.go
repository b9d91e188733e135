package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	// StatusLateCancelled отмена позже порога freeBeforeMinutes политики отмены
	StatusLateCancelled ReservationStatus = "LATE_CANCELLED"
)

// CancellationClass результат классификации отмены
type CancellationClass string

const (
	CancellationFree CancellationClass = "FREE"
	CancellationLate CancellationClass = "LATE"
)

// Reservation represents a time-bounded reservation of a resource
// Времена хранятся и сравниваются в UTC, интервал полуоткрытый [StartTime, EndTime)
type Reservation struct {
	ID            int64
	ResourceID    int64
	CustomerName  string
	CustomerEmail string
	PartySize     int
	StartTime     time.Time
	EndTime       time.Time
	Status        ReservationStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
}

// IsConfirmed returns true if the reservation is active
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled (free or late)
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled || r.Status == StatusLateCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
// Отмена возможна только из статуса CONFIRMED, оба статуса отмены терминальные
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// Overlaps проверяет пересечение с интервалом [start, end)
// Строгие неравенства: граничащие интервалы пересечением не считаются
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && start.Before(r.EndTime)
}

// TouchedDays возвращает календарные дни UTC, которые затрагивает интервал
// бронирования: день начала и, если он отличается, день конца
// Используется для точечной инвалидации кэша доступности
func (r *Reservation) TouchedDays() []time.Time {
	startDay := DayOf(r.StartTime)
	// Конец ровно в полночь принадлежит предыдущему дню: интервал полуоткрыт
	endDay := DayOf(r.EndTime.Add(-time.Nanosecond))
	if endDay.Equal(startDay) || endDay.Before(startDay) {
		return []time.Time{startDay}
	}
	return []time.Time{startDay, endDay}
}
