package create_business

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/directory/models"
)

type DirectoryService interface {
	CreateBusiness(ctx context.Context, req *models.CreateBusinessRequest) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
