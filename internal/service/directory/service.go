package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	businessRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/business"
	resourceRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-ReservationService/internal/service/directory/models"
)

// Service сервис справочника бизнесов и их ресурсов
type Service struct {
	businessRepo BusinessRepository
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(businessRepo BusinessRepository, resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// CreateBusiness создает новый бизнес
func (s *Service) CreateBusiness(ctx context.Context, req *models.CreateBusinessRequest) (*models.BusinessResponse, error) {
	if err := validateCreateBusiness(req); err != nil {
		s.logger.Warn("CreateBusiness: validation failed: %v", err)
		return nil, err
	}

	business := &domain.Business{
		Name: strings.TrimSpace(req.Name),
		Type: strings.TrimSpace(req.Type),
	}

	created, err := s.businessRepo.Create(ctx, business)
	if err != nil {
		s.logger.Error("CreateBusiness: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBusiness - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBusiness: created business id=%d, name=%s", created.ID, created.Name)
	return models.FromDomainBusiness(created), nil
}

// GetBusiness получает бизнес по ID
func (s *Service) GetBusiness(ctx context.Context, id int64) (*models.BusinessResponse, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetBusiness: business id=%d not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBusiness: repository error for business id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetBusiness - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(business), nil
}

// CreateResource создает новый ресурс у бизнеса
func (s *Service) CreateResource(ctx context.Context, businessID int64, req *models.CreateResourceRequest) (*models.ResourceResponse, error) {
	if err := validateCreateResource(businessID, req); err != nil {
		s.logger.Warn("CreateResource: validation failed: %v", err)
		return nil, err
	}

	// Бизнес должен существовать
	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("CreateResource: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("CreateResource: failed to get business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: CreateResource - repository error: %v", ErrInternal, err)
	}

	resource := &domain.Resource{
		BusinessID: businessID,
		Name:       strings.TrimSpace(req.Name),
		Capacity:   req.Capacity,
	}

	created, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		s.logger.Error("CreateResource: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateResource - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateResource: created resource id=%d for business=%d, capacity=%d",
		created.ID, businessID, created.Capacity)
	return models.FromDomainResource(created), nil
}

// GetResource получает ресурс по ID
func (s *Service) GetResource(ctx context.Context, id int64) (*models.ResourceResponse, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetResource: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetResource: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetResource - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResource(resource), nil
}

// ListResources получает все ресурсы бизнеса
func (s *Service) ListResources(ctx context.Context, businessID int64) (*models.ResourceListResponse, error) {
	if businessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	// Бизнес должен существовать
	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("ListResources: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("ListResources: failed to get business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListResources - repository error: %v", ErrInternal, err)
	}

	resources, err := s.resourceRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("ListResources: repository error for business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListResources - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResourceList(resources), nil
}

func validateCreateBusiness(req *models.CreateBusinessRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	return nil
}

func validateCreateResource(businessID int64, req *models.CreateResourceRequest) error {
	if businessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity < domain.MinResourceCapacity {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinResourceCapacity)
	}
	return nil
}
