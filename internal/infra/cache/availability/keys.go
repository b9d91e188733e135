package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Key возвращает ключ кэша доступности ресурса на календарный день UTC
// Формат фиксирован для диагностики: "avail:{resourceId}:{YYYY-MM-DD}"
func Key(resourceID int64, date time.Time) string {
	return fmt.Sprintf("avail:%d:%s", resourceID, domain.DayOf(date).Format(domain.DateFormat))
}
