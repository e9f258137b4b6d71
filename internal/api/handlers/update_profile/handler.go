package update_profile

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-BookingService/internal/api/handlers"
	"github.com/m04kA/ORS-BookingService/internal/api/middleware"
	"github.com/m04kA/ORS-BookingService/internal/service/profiles"
	"github.com/m04kA/ORS-BookingService/internal/service/profiles/models"
)

const (
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidRequest = "некорректный запрос: имя и email обязательны"
	msgForeignUser    = "изменение профиля другого пользователя запрещено"
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

// Handle PUT /api/v1/users/{userId}/profile
// Создает профиль при первом обращении и обновляет при повторных
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pathUserID := vars["userId"]

	callerID := middleware.UserID(r)
	if pathUserID != callerID {
		h.logger.Warn("PUT /users/{id}/profile - Access denied: caller=%s, requested=%s", callerID, pathUserID)
		handlers.RespondForbidden(w, msgForeignUser)
		return
	}

	var body UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /users/{id}/profile - Invalid request body: user_id=%s, error=%v", pathUserID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), &models.UpdateProfileRequest{
		UserID:      pathUserID,
		DisplayName: body.DisplayName,
		NotifyEmail: body.NotifyEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id}/profile - Invalid input: user_id=%s, error=%v", pathUserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("PUT /users/{id}/profile - Failed to update profile: user_id=%s, error=%v", pathUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id}/profile - Profile updated: user_id=%s", pathUserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
