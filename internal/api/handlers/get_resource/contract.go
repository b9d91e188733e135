package get_resource

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/directory/models"
)

type DirectoryService interface {
	GetResource(ctx context.Context, id int64) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
