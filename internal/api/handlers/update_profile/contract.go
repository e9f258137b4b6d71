package update_profile

import (
	"context"

	"github.com/m04kA/ORS-BookingService/internal/service/profiles/models"
)

// ProfilesService интерфейс сервиса профилей
type ProfilesService interface {
	Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
