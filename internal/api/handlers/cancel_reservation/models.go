package cancel_reservation

import (
	"time"

	cancelReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	ID                 int64   `json:"id"`
	ResourceID         int64   `json:"resourceId"`
	CustomerName       string  `json:"customerName"`
	CustomerEmail      string  `json:"customerEmail"`
	PartySize          int     `json:"partySize"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	Classification     string  `json:"classification"` // FREE или LATE
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest(reservationID int64) *cancelReservation.Request {
	return &cancelReservation.Request{
		ReservationID: reservationID,
		Reason:        r.Reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelReservationResponse {
	return &CancelReservationResponse{
		ID:                 resp.ID,
		ResourceID:         resp.ResourceID,
		CustomerName:       resp.CustomerName,
		CustomerEmail:      resp.CustomerEmail,
		PartySize:          resp.PartySize,
		StartTime:          resp.StartTime.UTC().Format(time.RFC3339),
		EndTime:            resp.EndTime.UTC().Format(time.RFC3339),
		Status:             resp.Status,
		Classification:     resp.Classification,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
