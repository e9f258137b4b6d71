package apply_shift_action

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-BookingService/internal/api/handlers"
	"github.com/m04kA/ORS-BookingService/internal/api/middleware"
	applyShiftAction "github.com/m04kA/ORS-BookingService/internal/usecase/apply_shift_action"
)

const (
	msgInvalidShiftID       = "некорректный ID смены"
	msgShiftNotFound        = "смена не найдена"
	msgUserNotFound         = "пользователь не найден"
	msgProfileIncomplete    = "профиль не заполнен: укажите имя и email"
	msgAlreadyBooked        = "у вас уже есть подтвержденное место на другой смене"
	msgCancelCutoff         = "отмена записи невозможна менее чем за 48 часов до смены"
	msgLeaveWaitlistCutoff  = "выход из листа ожидания невозможен менее чем за 24 часа до смены"
	msgShiftFull            = "смена заполнена и лист ожидания переполнен"
	msgConcurrentChange     = "смены изменились, обновите данные и повторите попытку"
	msgEmailDomainForbidden = "доступ разрешен только с институтской почты"
	msgTimeout              = "операция не уложилась в отведенное время, попробуйте еще раз"
	msgStorageUnavailable   = "хранилище временно недоступно"
)

type Handler struct {
	useCase ApplyShiftActionUseCase
	logger  Logger
}

func NewHandler(useCase ApplyShiftActionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shifts/{shiftId}/actions
// Выполняет действие вызывающего пользователя над сменой; само действие
// (запись / отмена / лист ожидания / выход) выводится из его текущих заявок
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shiftIDStr := vars["shiftId"]

	shiftID, err := strconv.ParseInt(shiftIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /shifts/{id}/actions - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	userID := middleware.UserID(r)

	result, err := h.useCase.Execute(r.Context(), &applyShiftAction.Request{
		UserID:  userID,
		ShiftID: shiftID,
	})
	if err != nil {
		// Каждый отказ движка переходит в отдельное сообщение:
		// причины не схлопываются в общую ошибку
		switch {
		case errors.Is(err, applyShiftAction.ErrInvalidInput):
			h.logger.Warn("POST /shifts/{id}/actions - Invalid input: shift_id=%d, user_id=%s", shiftID, userID)
			handlers.RespondBadRequest(w, msgInvalidShiftID)

		case errors.Is(err, applyShiftAction.ErrShiftNotFound):
			h.logger.Warn("POST /shifts/{id}/actions - Shift not found: shift_id=%d", shiftID)
			handlers.RespondNotFound(w, msgShiftNotFound)

		case errors.Is(err, applyShiftAction.ErrUserNotFound):
			h.logger.Warn("POST /shifts/{id}/actions - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, applyShiftAction.ErrProfileIncomplete):
			h.logger.Warn("POST /shifts/{id}/actions - Profile incomplete: user_id=%s", userID)
			handlers.RespondUnprocessableEntity(w, msgProfileIncomplete)

		case errors.Is(err, applyShiftAction.ErrEmailDomainNotAllowed):
			h.logger.Warn("POST /shifts/{id}/actions - Email domain not allowed: user_id=%s", userID)
			handlers.RespondForbidden(w, msgEmailDomainForbidden)

		case errors.Is(err, applyShiftAction.ErrAlreadyBookedElsewhere):
			h.logger.Warn("POST /shifts/{id}/actions - Already booked elsewhere: user_id=%s", userID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, applyShiftAction.ErrCancelCutoffViolation):
			h.logger.Warn("POST /shifts/{id}/actions - Cancel cutoff violation: shift_id=%d, user_id=%s", shiftID, userID)
			handlers.RespondBadRequest(w, msgCancelCutoff)

		case errors.Is(err, applyShiftAction.ErrLeaveWaitlistCutoffViolation):
			h.logger.Warn("POST /shifts/{id}/actions - Leave waitlist cutoff violation: shift_id=%d, user_id=%s", shiftID, userID)
			handlers.RespondBadRequest(w, msgLeaveWaitlistCutoff)

		case errors.Is(err, applyShiftAction.ErrShiftFullAndWaitlistFull):
			h.logger.Warn("POST /shifts/{id}/actions - Shift and waitlist full: shift_id=%d", shiftID)
			handlers.RespondBadRequest(w, msgShiftFull)

		case errors.Is(err, applyShiftAction.ErrConcurrentModification):
			h.logger.Warn("POST /shifts/{id}/actions - Concurrent modification: shift_id=%d, user_id=%s", shiftID, userID)
			handlers.RespondConflict(w, msgConcurrentChange)

		case errors.Is(err, applyShiftAction.ErrTimeout):
			h.logger.Error("POST /shifts/{id}/actions - Timeout: shift_id=%d, user_id=%s", shiftID, userID)
			handlers.RespondGatewayTimeout(w, msgTimeout)

		case errors.Is(err, applyShiftAction.ErrStorageUnavailable):
			h.logger.Error("POST /shifts/{id}/actions - Storage unavailable: shift_id=%d, error=%v", shiftID, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("POST /shifts/{id}/actions - Failed to apply action: shift_id=%d, user_id=%s, error=%v",
				shiftID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shifts/{id}/actions - Action applied: shift_id=%d, user_id=%s, action=%s",
		shiftID, userID, result.Action)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
