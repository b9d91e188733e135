package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

// FreeWindowResponse свободное окно, полуоткрытый интервал [start, end)
type FreeWindowResponse struct {
	Start string `json:"start"` // RFC 3339
	End   string `json:"end"`   // RFC 3339
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ResourceID  int64                `json:"resourceId"`
	Date        string               `json:"date"` // YYYY-MM-DD
	FreeWindows []FreeWindowResponse `json:"freeWindows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	windows := make([]FreeWindowResponse, 0, len(resp.Windows))
	for _, w := range resp.Windows {
		windows = append(windows, FreeWindowResponse{
			Start: w.Start.UTC().Format(time.RFC3339),
			End:   w.End.UTC().Format(time.RFC3339),
		})
	}

	return &AvailabilityResponse{
		ResourceID:  resp.ResourceID,
		Date:        resp.Date.Format(domain.DateFormat),
		FreeWindows: windows,
	}
}
