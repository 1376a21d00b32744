package assistant

import (
	"context"

	"github.com/smart-taythanh/STT-CitizenService/internal/integrations/gemini"
)

// ChatBackend интерфейс чат-бэкенда. Один opaque вызов:
// история + новое сообщение -> текст ответа.
type ChatBackend interface {
	Send(ctx context.Context, history []gemini.Message, input string) (string, error)
}

// ProfileStore интерфейс хранилища персонализации (аватар, язык)
type ProfileStore interface {
	Get(ctx context.Context, deviceID, key string) (string, error)
	Set(ctx context.Context, deviceID, key, value string) error
}

// Metrics интерфейс счетчиков ассистента
type Metrics interface {
	IncChatRequest()
	IncChatFailure()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
