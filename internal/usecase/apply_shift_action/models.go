package apply_shift_action

import (
	"time"

	"github.com/m04kA/ORS-BookingService/internal/domain"
	"github.com/m04kA/ORS-BookingService/pkg/types"
)

// Request модель запроса на действие со сменой
// Само действие не передается: оно выводится из текущего состояния
// заявок пользователя правилами eligibility
type Request struct {
	UserID  string // ID пользователя (из X-User-ID)
	ShiftID int64  // ID целевой смены
}

// Response модель ответа с выполненным действием и новым состоянием смены
type Response struct {
	Action  domain.Action    // Выполненное действие
	ShiftID int64            // ID смены
	Date    types.DateString // Дата смены

	Participants []Entry // Подтвержденные участники после перехода
	Waitlist     []Entry // Лист ожидания после перехода
}

// Entry заявка в ответе usecase
type Entry struct {
	UserID      string
	DisplayName string
}

// Limits бизнес-правила бронирования, задаются конфигурацией
type Limits struct {
	MaxParticipants          int
	MaxWaitlist              int
	CancelCutoffHours        float64
	LeaveWaitlistCutoffHours float64
	AllowedEmailSuffix       string
	ActionTimeout            time.Duration
}
