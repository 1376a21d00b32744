package confirm_selection

import (
	"context"

	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

type SessionService interface {
	ConfirmSelection(ctx context.Context, deviceID, sessionID string) (*sessions.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
