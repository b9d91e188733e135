package cancel_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на отмену бронирования
type Request struct {
	ReservationID int64  // ID бронирования
	Reason        string // Причина отмены
}

// Response модель ответа с отменённым бронированием
type Response struct {
	ID                 int64
	ResourceID         int64
	CustomerName       string
	CustomerEmail      string
	PartySize          int
	StartTime          time.Time
	EndTime            time.Time
	Status             string
	Classification     string // FREE или LATE
	CancellationReason *string
	CreatedAt          time.Time
}

func fromDomain(r *domain.Reservation, class domain.CancellationClass) *Response {
	return &Response{
		ID:                 r.ID,
		ResourceID:         r.ResourceID,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		PartySize:          r.PartySize,
		StartTime:          r.StartTime,
		EndTime:            r.EndTime,
		Status:             string(r.Status),
		Classification:     string(class),
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
	}
}
