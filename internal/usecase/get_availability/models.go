package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса свободных окон
type Request struct {
	ResourceID int64     // ID ресурса
	Date       time.Time // Календарный день UTC
}

// Response модель ответа со списком свободных окон
type Response struct {
	ResourceID int64
	Date       time.Time
	Windows    []domain.TimeWindow
}
