package create_resource

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/directory/models"
)

type DirectoryService interface {
	CreateResource(ctx context.Context, businessID int64, req *models.CreateResourceRequest) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
