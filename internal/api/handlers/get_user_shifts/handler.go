package get_user_shifts

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-BookingService/internal/api/handlers"
	"github.com/m04kA/ORS-BookingService/internal/api/middleware"
	"github.com/m04kA/ORS-BookingService/internal/service/shifts"
	"github.com/m04kA/ORS-BookingService/internal/service/shifts/models"
)

const (
	msgInvalidRequest = "некорректный запрос"
	msgForeignUser    = "доступ к заявкам другого пользователя запрещен"
)

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

// Handle GET /api/v1/users/{userId}/shifts
// Пользователь видит только собственные заявки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pathUserID := vars["userId"]

	callerID := middleware.UserID(r)
	if pathUserID != callerID {
		h.logger.Warn("GET /users/{id}/shifts - Access denied: caller=%s, requested=%s", callerID, pathUserID)
		handlers.RespondForbidden(w, msgForeignUser)
		return
	}

	result, err := h.service.GetUserShifts(r.Context(), &models.GetUserShiftsRequest{UserID: pathUserID})
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/shifts - Invalid input: user_id=%s", pathUserID)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /users/{id}/shifts - Failed to fetch shifts: user_id=%s, error=%v", pathUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/shifts - Fetched: user_id=%s, booked=%d, waitlisted=%d",
		pathUserID, len(result.Booked), len(result.Waitlisted))
	handlers.RespondJSON(w, http.StatusOK, result)
}
