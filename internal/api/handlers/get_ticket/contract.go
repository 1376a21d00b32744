package get_ticket

import (
	"context"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

type SessionService interface {
	Get(ctx context.Context, deviceID, sessionID string) (*sessions.Session, error)
}

// TicketRenderer рендерит подтвержденную запись в PNG
type TicketRenderer interface {
	Render(record *domain.BookingRecord) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
