package middleware

import (
	"context"
	"net/http"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
)

// DeviceIDHeader заголовок идентификатора устройства.
// Аналог "одной браузерной сессии": никакой аутентификации за ним нет.
const DeviceIDHeader = "X-Device-ID"

type contextKey string

const deviceIDKey contextKey = "deviceID"

// DeviceAuth требует наличия X-Device-ID и кладет его в контекст запроса
func DeviceAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := r.Header.Get(DeviceIDHeader)
		if deviceID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "thiếu định danh thiết bị (X-Device-ID)")
			return
		}

		ctx := context.WithValue(r.Context(), deviceIDKey, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DeviceID извлекает идентификатор устройства из контекста запроса
func DeviceID(ctx context.Context) string {
	if deviceID, ok := ctx.Value(deviceIDKey).(string); ok {
		return deviceID
	}
	return ""
}
