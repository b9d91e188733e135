package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс журнала броней
type ReservationRepository interface {
	// FindForDay возвращает подтверждённые брони ресурса, начинающиеся
	// в пределах [dayStart, dayEnd), упорядоченные по времени начала
	FindForDay(ctx context.Context, resourceID int64, dayStart, dayEnd time.Time, includeCancelled bool) ([]*domain.Reservation, error)
}

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	Get(ctx context.Context, resourceID int64, date time.Time) ([]domain.TimeWindow, error)
	Set(ctx context.Context, resourceID int64, date time.Time, windows []domain.TimeWindow) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
