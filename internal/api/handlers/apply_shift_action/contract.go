package apply_shift_action

import (
	"context"

	applyShiftAction "github.com/m04kA/ORS-BookingService/internal/usecase/apply_shift_action"
)

// ApplyShiftActionUseCase интерфейс use case действия со сменой
type ApplyShiftActionUseCase interface {
	Execute(ctx context.Context, req *applyShiftAction.Request) (*applyShiftAction.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
