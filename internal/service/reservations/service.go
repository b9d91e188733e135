package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис чтения бронирований
type Service struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// ListForDay получает бронирования ресурса на календарный день UTC,
// упорядоченные по времени начала
// includeCancelled=true добавляет отменённые брони (аудит)
func (s *Service) ListForDay(ctx context.Context, resourceID int64, date time.Time, includeCancelled bool) (*models.ReservationListResponse, error) {
	s.logger.Info("ListForDay: resource=%d, date=%s, includeCancelled=%t",
		resourceID, date.Format(domain.DateFormat), includeCancelled)

	if resourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Ресурс должен существовать
	if _, err := s.resourceRepo.GetByID(ctx, resourceID); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("ListForDay: resource id=%d not found", resourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("ListForDay: failed to get resource id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: ListForDay - repository error: %v", ErrInternal, err)
	}

	dayStart, dayEnd := domain.DayBounds(date)

	reservations, err := s.reservationRepo.FindForDay(ctx, resourceID, dayStart, dayEnd, includeCancelled)
	if err != nil {
		s.logger.Error("ListForDay: repository error for resource id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: ListForDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDay: fetched %d reservation(s) for resource=%d", len(reservations), resourceID)
	return models.FromDomainReservationList(reservations), nil
}
