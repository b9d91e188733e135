package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CreateBusinessRequest запрос на создание бизнеса
type CreateBusinessRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// BusinessResponse ответ с данными бизнеса
type BusinessResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateResourceRequest запрос на создание ресурса
type CreateResourceRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// ResourceResponse ответ с данными ресурса
type ResourceResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	Name       string    `json:"name"`
	Capacity   int       `json:"capacity"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ResourceListResponse ответ со списком ресурсов бизнеса
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}

	return &BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Type:      b.Type,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	if r == nil {
		return nil
	}

	return &ResourceResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(resources []*domain.Resource) *ResourceListResponse {
	resp := &ResourceListResponse{
		Resources: make([]ResourceResponse, 0, len(resources)),
	}

	for _, r := range resources {
		if dto := FromDomainResource(r); dto != nil {
			resp.Resources = append(resp.Resources, *dto)
		}
	}

	return resp
}
