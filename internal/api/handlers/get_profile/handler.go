package get_profile

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-BookingService/internal/api/handlers"
	"github.com/m04kA/ORS-BookingService/internal/api/middleware"
	"github.com/m04kA/ORS-BookingService/internal/service/profiles"
)

const (
	msgInvalidRequest  = "некорректный запрос"
	msgForeignUser     = "доступ к профилю другого пользователя запрещен"
	msgProfileNotFound = "профиль не найден"
)

type Handler struct {
	service ProfilesService
	logger  Logger
}

func NewHandler(service ProfilesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pathUserID := vars["userId"]

	callerID := middleware.UserID(r)
	if pathUserID != callerID {
		h.logger.Warn("GET /users/{id}/profile - Access denied: caller=%s, requested=%s", callerID, pathUserID)
		handlers.RespondForbidden(w, msgForeignUser)
		return
	}

	result, err := h.service.Get(r.Context(), pathUserID)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound):
			h.logger.Warn("GET /users/{id}/profile - Profile not found: user_id=%s", pathUserID)
			handlers.RespondNotFound(w, msgProfileNotFound)
		case errors.Is(err, profiles.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/profile - Invalid input: user_id=%s", pathUserID)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /users/{id}/profile - Failed to fetch profile: user_id=%s, error=%v", pathUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/profile - Profile fetched: user_id=%s", pathUserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
