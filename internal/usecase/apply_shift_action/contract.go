package apply_shift_action

import (
	"context"
	"time"

	"github.com/m04kA/ORS-BookingService/internal/domain"
	"github.com/m04kA/ORS-BookingService/internal/integrations/identityservice"
	"github.com/m04kA/ORS-BookingService/pkg/types"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListAll(ctx context.Context) ([]*domain.Shift, error)
	UpdateEntries(ctx context.Context, s *domain.Shift) error
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	GetUser(ctx context.Context, userID string) (*identityservice.User, error)
}

// Notifier интерфейс отправки писем-подтверждений
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, toEmail, displayName string, shiftDate types.DateString) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
