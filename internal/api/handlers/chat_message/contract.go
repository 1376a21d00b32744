package chat_message

import (
	"context"

	"github.com/smart-taythanh/STT-CitizenService/internal/integrations/gemini"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/assistant"
)

type AssistantService interface {
	Send(ctx context.Context, deviceID, input string) (*assistant.Reply, error)
	History(ctx context.Context, deviceID string) ([]gemini.Message, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
