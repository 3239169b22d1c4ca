package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/josephken/RMS-ReservationService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// HeaderUserID заголовок с идентификатором пользователя
// Аутентификацию выполняет API gateway, сервис доверяет заголовку
const HeaderUserID = "X-User-ID"

// Auth извлекает идентификатор пользователя из заголовка запроса
// и кладет его в контекст. Запросы без валидного заголовка отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+HeaderUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+HeaderUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
