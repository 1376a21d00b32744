package chat_preferences

import (
	"context"

	"github.com/smart-taythanh/STT-CitizenService/internal/service/assistant"
)

type AssistantService interface {
	GetPreferences(ctx context.Context, deviceID string) (*assistant.Preferences, error)
	SetPreferences(ctx context.Context, deviceID string, prefs assistant.Preferences) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
