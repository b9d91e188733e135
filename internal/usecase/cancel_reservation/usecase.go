package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	policyRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/policy"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase use case отмены бронирования
//
// Классифицирует отмену как FREE или LATE по политике бизнеса:
// FREE, если до начала брони осталось не меньше freeBeforeMinutes минут.
// Отсутствие политики трактуется как freeBeforeMinutes = 0: любая отмена
// до начала брони бесплатна
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	policyRepo      PolicyRepository
	cache           AvailabilityCache
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	policyRepo PolicyRepository,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		policyRepo:      policyRepo,
		cache:           cache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: id=%d", req.ReservationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Загружаем бронирование
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("CancelReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("CancelReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrStorageUnavailable, err)
	}

	// 3. Отмена возможна только из CONFIRMED, оба статуса отмены терминальные
	if !reservation.CanBeCancelled() {
		uc.logger.Warn("CancelReservation: reservation id=%d is not confirmed, status=%s",
			reservation.ID, reservation.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrNotConfirmed, reservation.Status)
	}

	// 4. Классифицируем отмену по политике бизнеса-владельца ресурса
	class, err := uc.classify(ctx, reservation, now)
	if err != nil {
		return nil, err
	}

	status := domain.StatusCancelled
	if class == domain.CancellationLate {
		status = domain.StatusLateCancelled
	}

	// 5. Персистим терминальный статус
	if err := uc.reservationRepo.Cancel(ctx, reservation.ID, status, req.Reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("CancelReservation: failed to cancel reservation id=%d: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel reservation: %v", ErrStorageUnavailable, err)
	}

	uc.logger.Info("CancelReservation: reservation id=%d cancelled, class=%s, status=%s",
		reservation.ID, class, status)

	// 6. Инвалидация кэша доступности после записи: день начала и,
	// если бронь через полночь, день конца. Ошибка не фатальна (TTL)
	if err := uc.cache.EvictDays(ctx, reservation.ResourceID, reservation.TouchedDays()); err != nil {
		uc.logger.Error("CancelReservation: failed to evict availability cache for resource id=%d: %v",
			reservation.ResourceID, err)
	}

	reservation.Status = status
	reservation.CancellationReason = ptr.Ptr(req.Reason)

	return fromDomain(reservation, class), nil
}

// classify определяет класс отмены FREE/LATE на момент now
func (uc *UseCase) classify(ctx context.Context, reservation *domain.Reservation, now time.Time) (domain.CancellationClass, error) {
	resource, err := uc.resourceRepo.GetByID(ctx, reservation.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			// Ресурс пропал из-под живой брони - повреждённые данные
			uc.logger.Error("CancelReservation: resource id=%d not found for reservation id=%d",
				reservation.ResourceID, reservation.ID)
			return "", fmt.Errorf("%w: resource %d not found", ErrInternal, reservation.ResourceID)
		}
		return "", fmt.Errorf("%w: failed to get resource: %v", ErrStorageUnavailable, err)
	}

	freeBefore := domain.DefaultFreeBeforeMinutes
	policy, err := uc.policyRepo.GetByBusinessID(ctx, resource.BusinessID)
	if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		return "", fmt.Errorf("%w: failed to get cancellation policy: %v", ErrStorageUnavailable, err)
	}
	if policy != nil {
		freeBefore = policy.FreeBeforeMinutes
	} else {
		uc.logger.Info("CancelReservation: no cancellation policy for business id=%d, using freeBeforeMinutes=%d",
			resource.BusinessID, freeBefore)
	}

	return domain.ClassifyCancellation(reservation.StartTime, now, freeBefore), nil
}

func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	return nil
}
