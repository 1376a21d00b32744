package get_booking_session

import (
	"context"

	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

type SessionService interface {
	Get(ctx context.Context, deviceID, sessionID string) (*sessions.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
