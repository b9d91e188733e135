package list_resources

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/directory/models"
)

type DirectoryService interface {
	ListResources(ctx context.Context, businessID int64) (*models.ResourceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
