package get_availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// computeFreeWindows вычисляет свободные окна дня [dayStart, dayEnd)
// одним проходом курсора по броням, упорядоченным по времени начала.
//
// Журнал обязан вернуть брони отсортированными, но сортируем защитно ещё раз.
// Курсор только движется вперёд, поэтому пересекающиеся и смежные брони
// корректно сливаются даже на устаревших/неконсистентных данных.
// Результат: непересекающиеся окна, упорядоченные по началу, всегда start < end;
// объединение окон и обрезанных к дню броней покрывает день целиком
func computeFreeWindows(dayStart, dayEnd time.Time, reservations []*domain.Reservation) []domain.TimeWindow {
	sorted := make([]*domain.Reservation, len(reservations))
	copy(sorted, reservations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	windows := make([]domain.TimeWindow, 0, len(sorted)+1)
	cursor := dayStart

	for _, r := range sorted {
		// Отменённые строки исключает запрос журнала, фильтруем защитно
		if !r.IsConfirmed() {
			continue
		}

		// Обрезаем бронь к границам дня
		rs := maxTime(r.StartTime, dayStart)
		re := minTime(r.EndTime, dayEnd)

		// Бронь не пересекает день
		if !re.After(rs) {
			continue
		}

		// Дырка между курсором и началом брони - свободное окно
		if cursor.Before(rs) {
			windows = append(windows, domain.TimeWindow{Start: cursor, End: minTime(rs, dayEnd)})
		}

		// Курсор двигается только вперёд
		if re.After(cursor) {
			cursor = re
		}

		if !cursor.Before(dayEnd) {
			break
		}
	}

	// Хвост дня после последней брони
	if cursor.Before(dayEnd) {
		windows = append(windows, domain.TimeWindow{Start: cursor, End: dayEnd})
	}

	return windows
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
