package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ResourceID    int64     // ID ресурса
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента
	PartySize     int       // Размер группы
	StartTime     time.Time // Начало интервала (UTC)
	EndTime       time.Time // Конец интервала (UTC), полуоткрытый [start, end)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	ResourceID    int64
	CustomerName  string
	CustomerEmail string
	PartySize     int
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	CreatedAt     time.Time
}

func fromDomain(r *domain.Reservation) *Response {
	return &Response{
		ID:            r.ID,
		ResourceID:    r.ResourceID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		PartySize:     r.PartySize,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}
