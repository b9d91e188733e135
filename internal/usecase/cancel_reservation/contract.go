package cancel_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс журнала броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error
}

// ResourceRepository интерфейс репозитория ресурсов
// Нужен для разрешения resource -> business при поиске политики отмены
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// PolicyRepository интерфейс хранилища политик отмены
type PolicyRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.CancellationPolicy, error)
}

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	EvictDays(ctx context.Context, resourceID int64, days []time.Time) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
