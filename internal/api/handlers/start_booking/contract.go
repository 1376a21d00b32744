package start_booking

import (
	"context"

	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

type SessionService interface {
	Start(ctx context.Context, deviceID string) (*sessions.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
