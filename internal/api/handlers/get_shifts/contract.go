package get_shifts

import (
	"context"

	"github.com/m04kA/ORS-BookingService/internal/service/shifts/models"
)

// ShiftsService интерфейс сервиса чтения смен
type ShiftsService interface {
	GetBoard(ctx context.Context, req *models.GetBoardRequest) (*models.BoardResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
