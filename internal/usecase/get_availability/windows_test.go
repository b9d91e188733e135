package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func day(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return dayStart, dayStart.Add(24 * time.Hour)
}

func confirmed(start, end time.Time) *domain.Reservation {
	return &domain.Reservation{
		ResourceID: 1,
		PartySize:  2,
		StartTime:  start,
		EndTime:    end,
		Status:     domain.StatusConfirmed,
	}
}

func TestComputeFreeWindows_EmptyDay(t *testing.T) {
	dayStart, dayEnd := day(t)

	windows := computeFreeWindows(dayStart, dayEnd, nil)

	require.Len(t, windows, 1)
	assert.Equal(t, dayStart, windows[0].Start)
	assert.Equal(t, dayEnd, windows[0].End)
}

func TestComputeFreeWindows_SingleReservation(t *testing.T) {
	dayStart, dayEnd := day(t)

	reservations := []*domain.Reservation{
		confirmed(dayStart.Add(10*time.Hour), dayStart.Add(12*time.Hour)),
	}

	windows := computeFreeWindows(dayStart, dayEnd, reservations)

	require.Len(t, windows, 2)
	assert.Equal(t, dayStart, windows[0].Start)
	assert.Equal(t, dayStart.Add(10*time.Hour), windows[0].End)
	assert.Equal(t, dayStart.Add(12*time.Hour), windows[1].Start)
	assert.Equal(t, dayEnd, windows[1].End)
}

func TestComputeFreeWindows_CancelledIgnored(t *testing.T) {
	dayStart, dayEnd := day(t)

	cancelled := confirmed(dayStart.Add(10*time.Hour), dayStart.Add(12*time.Hour))
	cancelled.Status = domain.StatusCancelled

	lateCancelled := confirmed(dayStart.Add(14*time.Hour), dayStart.Add(16*time.Hour))
	lateCancelled.Status = domain.StatusLateCancelled

	windows := computeFreeWindows(dayStart, dayEnd, []*domain.Reservation{cancelled, lateCancelled})

	require.Len(t, windows, 1)
	assert.Equal(t, dayStart, windows[0].Start)
	assert.Equal(t, dayEnd, windows[0].End)
}

func TestComputeFreeWindows_UnsortedInput(t *testing.T) {
	dayStart, dayEnd := day(t)

	reservations := []*domain.Reservation{
		confirmed(dayStart.Add(18*time.Hour), dayStart.Add(20*time.Hour)),
		confirmed(dayStart.Add(10*time.Hour), dayStart.Add(12*time.Hour)),
	}

	windows := computeFreeWindows(dayStart, dayEnd, reservations)

	require.Len(t, windows, 3)
	assert.Equal(t, dayStart.Add(12*time.Hour), windows[1].Start)
	assert.Equal(t, dayStart.Add(18*time.Hour), windows[1].End)
}

func TestComputeFreeWindows_AdjacentReservations(t *testing.T) {
	dayStart, dayEnd := day(t)

	// Смежные интервалы [10, 12) и [12, 14) не оставляют окна между собой
	reservations := []*domain.Reservation{
		confirmed(dayStart.Add(10*time.Hour), dayStart.Add(12*time.Hour)),
		confirmed(dayStart.Add(12*time.Hour), dayStart.Add(14*time.Hour)),
	}

	windows := computeFreeWindows(dayStart, dayEnd, reservations)

	require.Len(t, windows, 2)
	assert.Equal(t, dayStart, windows[0].Start)
	assert.Equal(t, dayStart.Add(10*time.Hour), windows[0].End)
	assert.Equal(t, dayStart.Add(14*time.Hour), windows[1].Start)
	assert.Equal(t, dayEnd, windows[1].End)
}

func TestComputeFreeWindows_ClipsMidnightSpan(t *testing.T) {
	dayStart, dayEnd := day(t)

	// Бронь начинается накануне и заканчивается в 01:00 текущего дня
	reservations := []*domain.Reservation{
		confirmed(dayStart.Add(-time.Hour), dayStart.Add(time.Hour)),
	}

	windows := computeFreeWindows(dayStart, dayEnd, reservations)

	require.Len(t, windows, 1)
	assert.Equal(t, dayStart.Add(time.Hour), windows[0].Start)
	assert.Equal(t, dayEnd, windows[0].End)
}

func TestComputeFreeWindows_FullDayReservation(t *testing.T) {
	dayStart, dayEnd := day(t)

	reservations := []*domain.Reservation{
		confirmed(dayStart, dayEnd),
	}

	windows := computeFreeWindows(dayStart, dayEnd, reservations)

	assert.Empty(t, windows)
}

func TestComputeFreeWindows_OutsideDayIgnored(t *testing.T) {
	dayStart, dayEnd := day(t)

	// Бронь целиком в предыдущем дне
	reservations := []*domain.Reservation{
		confirmed(dayStart.Add(-3*time.Hour), dayStart.Add(-time.Hour)),
	}

	windows := computeFreeWindows(dayStart, dayEnd, reservations)

	require.Len(t, windows, 1)
	assert.Equal(t, dayStart, windows[0].Start)
	assert.Equal(t, dayEnd, windows[0].End)
}

func TestComputeFreeWindows_WindowsAreOrderedAndDisjoint(t *testing.T) {
	dayStart, dayEnd := day(t)

	reservations := []*domain.Reservation{
		confirmed(dayStart.Add(9*time.Hour), dayStart.Add(11*time.Hour)),
		confirmed(dayStart.Add(13*time.Hour), dayStart.Add(15*time.Hour)),
		confirmed(dayStart.Add(19*time.Hour), dayStart.Add(21*time.Hour)),
	}

	windows := computeFreeWindows(dayStart, dayEnd, reservations)

	require.Len(t, windows, 4)
	for i := range windows {
		assert.True(t, windows[i].Start.Before(windows[i].End),
			"window %d must be non-empty", i)
		if i > 0 {
			assert.False(t, windows[i].Start.Before(windows[i-1].End),
				"window %d must not overlap previous", i)
		}
	}
}
