package get_business

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/directory/models"
)

type DirectoryService interface {
	GetBusiness(ctx context.Context, id int64) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
