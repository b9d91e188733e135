package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/resource"
)

// UseCase use case создания бронирования
//
// Гарантирует инвариант непересечения: две подтверждённые брони одного
// ресурса не пересекаются по полуоткрытому интервалу [start, end).
// Проверка и вставка выполняются в сериализуемой транзакции; авторитет
// инварианта - журнал броней (exclusion constraint в БД), т.к. процессная
// блокировка ничего не гарантирует при нескольких инстансах сервиса
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	cache           AvailabilityCache
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		cache:           cache,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Порядок проверок фиксирован: валидация интервала, существование ресурса,
// вместимость, пересечения. Первое нарушение выигрывает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: resource=%d, party=%d, interval=[%s, %s)",
		req.ResourceID, req.PartySize, req.StartTime.UTC().Format("2006-01-02T15:04:05Z"), req.EndTime.UTC().Format("2006-01-02T15:04:05Z"))

	// 1. Валидация входных данных (включая start < end)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 2. Проверки и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Ресурс должен существовать
		resource, err := uc.resourceRepo.GetByID(txCtx, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("CreateReservation: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateReservation: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrStorageUnavailable, err)
		}

		// 2.2. Размер группы не превышает вместимость
		if !resource.CanFit(req.PartySize) {
			uc.logger.Warn("CreateReservation: party size %d exceeds capacity %d of resource id=%d",
				req.PartySize, resource.Capacity, resource.ID)
			return fmt.Errorf("%w: party size %d, capacity %d", ErrCapacityExceeded, req.PartySize, resource.Capacity)
		}

		// 2.3. Предварительная проверка пересечений
		overlaps, err := uc.reservationRepo.FindOverlapping(txCtx, req.ResourceID, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check overlaps for resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrStorageUnavailable, err)
		}
		if len(overlaps) > 0 {
			uc.logger.Warn("CreateReservation: interval overlaps %d confirmed reservation(s) on resource id=%d",
				len(overlaps), req.ResourceID)
			return ErrTimeConflict
		}

		// 2.4. Вставка; гонку двух прошедших проверку запросов ловит БД
		reservation := &domain.Reservation{
			ResourceID:    req.ResourceID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			PartySize:     req.PartySize,
			StartTime:     req.StartTime.UTC(),
			EndTime:       req.EndTime.UTC(),
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if reservationRepo.IsConflict(err) {
				uc.logger.Warn("CreateReservation: ledger rejected overlapping insert on resource id=%d", req.ResourceID)
				return ErrTimeConflict
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrStorageUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Отказ на коммите сериализуемой транзакции - тот же конфликт,
		// что и отказ предварительной проверки
		if reservationRepo.IsConflict(err) {
			return nil, ErrTimeConflict
		}
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, ErrCapacityExceeded) ||
			errors.Is(err, ErrTimeConflict) || errors.Is(err, ErrStorageUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 3. Инвалидация кэша доступности строго после коммита.
	// Ошибка инвалидации не фатальна: TTL ограничивает время жизни
	// устаревшей записи
	if err := uc.cache.EvictDays(ctx, result.ResourceID, result.TouchedDays()); err != nil {
		uc.logger.Error("CreateReservation: failed to evict availability cache for resource id=%d: %v",
			result.ResourceID, err)
	}

	return fromDomain(result), nil
}
