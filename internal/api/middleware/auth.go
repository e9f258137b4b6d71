package middleware

import (
	"net/http"

	"github.com/m04kA/ORS-BookingService/internal/api/handlers"
)

// HeaderUserID заголовок с ID аутентифицированного пользователя
// Аутентификация выполняется внешним шлюзом; сервис доверяет заголовку
const HeaderUserID = "X-User-ID"

// Auth проверяет наличие X-User-ID в запросе
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderUserID) == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID возвращает ID пользователя из запроса
func UserID(r *http.Request) string {
	return r.Header.Get(HeaderUserID)
}
