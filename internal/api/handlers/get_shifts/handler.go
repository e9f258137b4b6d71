package get_shifts

import (
	"errors"
	"net/http"

	"github.com/m04kA/ORS-BookingService/internal/api/handlers"
	"github.com/m04kA/ORS-BookingService/internal/api/middleware"
	"github.com/m04kA/ORS-BookingService/internal/service/shifts"
	"github.com/m04kA/ORS-BookingService/internal/service/shifts/models"
)

const msgInvalidRequest = "некорректный запрос"

type Handler struct {
	service ShiftsService
	logger  Logger
}

func NewHandler(service ShiftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shifts
// Возвращает доску смен целиком: занятость каждой смены и отметки
// вызывающего пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	result, err := h.service.GetBoard(r.Context(), &models.GetBoardRequest{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrInvalidInput):
			h.logger.Warn("GET /shifts - Invalid input: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /shifts - Failed to fetch board: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shifts - Board fetched: user_id=%s, shifts=%d", userID, len(result.Shifts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
