package get_user_shifts

import (
	"context"

	"github.com/m04kA/ORS-BookingService/internal/service/shifts/models"
)

// ShiftsService интерфейс сервиса чтения смен
type ShiftsService interface {
	GetUserShifts(ctx context.Context, req *models.GetUserShiftsRequest) (*models.UserShiftsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
