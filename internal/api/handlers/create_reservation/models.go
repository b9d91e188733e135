package create_reservation

import (
	"fmt"
	"time"

	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ResourceID    int64  `json:"resourceId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	PartySize     int    `json:"partySize"`
	StartTime     string `json:"startTime"` // RFC 3339, "2026-03-14T18:00:00Z"
	EndTime       string `json:"endTime"`   // RFC 3339
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64  `json:"id"`
	ResourceID    int64  `json:"resourceId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	PartySize     int    `json:"partySize"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse startTime: %w", err)
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse endTime: %w", err)
	}

	return &createReservation.Request{
		ResourceID:    r.ResourceID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		PartySize:     r.PartySize,
		StartTime:     startTime.UTC(),
		EndTime:       endTime.UTC(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		ResourceID:    resp.ResourceID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		PartySize:     resp.PartySize,
		StartTime:     resp.StartTime.UTC().Format(time.RFC3339),
		EndTime:       resp.EndTime.UTC().Format(time.RFC3339),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
