package shifts

import (
	"context"

	"github.com/m04kA/ORS-BookingService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListAll(ctx context.Context) ([]*domain.Shift, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
