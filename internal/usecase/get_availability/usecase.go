package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availCache "github.com/m04kA/SMC-ReservationService/internal/infra/cache/availability"
)

// UseCase use case получения свободных окон ресурса на день
//
// Семантика get-or-compute: сначала кэш, на промахе - вычисление из журнала
// броней и запись в кэш. Недоступность кэша деградирует к прямому вычислению
// и никогда не роняет запрос; недоступность журнала фатальна для операции
type UseCase struct {
	reservationRepo ReservationRepository
	cache           AvailabilityCache
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, cache AvailabilityCache, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		cache:           cache,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	day := domain.DayOf(req.Date)

	// 1. Пробуем кэш
	windows, err := uc.cache.Get(ctx, req.ResourceID, day)
	if err == nil {
		uc.logger.Info("GetAvailability: cache hit for resource=%d, date=%s",
			req.ResourceID, day.Format(domain.DateFormat))
		return &Response{ResourceID: req.ResourceID, Date: day, Windows: windows}, nil
	}
	if !errors.Is(err, availCache.ErrCacheMiss) {
		uc.logger.Warn("GetAvailability: cache unavailable, computing directly: %v", err)
	}

	// 2. Промах - вычисляем из журнала броней
	dayStart, dayEnd := domain.DayBounds(day)

	reservations, err := uc.reservationRepo.FindForDay(ctx, req.ResourceID, dayStart, dayEnd, false)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load reservations for resource=%d, date=%s: %v",
			req.ResourceID, day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrStorageUnavailable, err)
	}

	windows = computeFreeWindows(dayStart, dayEnd, reservations)

	// 3. Кладём в кэш; гонка со встречным evict разрешается TTL,
	// ошибка записи не фатальна
	if err := uc.cache.Set(ctx, req.ResourceID, day, windows); err != nil {
		uc.logger.Warn("GetAvailability: failed to populate cache for resource=%d, date=%s: %v",
			req.ResourceID, day.Format(domain.DateFormat), err)
	}

	uc.logger.Info("GetAvailability: computed %d free window(s) for resource=%d, date=%s",
		len(windows), req.ResourceID, day.Format(domain.DateFormat))

	return &Response{ResourceID: req.ResourceID, Date: day, Windows: windows}, nil
}

func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
