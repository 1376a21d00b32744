package read_notification

import (
	"context"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

type NotificationService interface {
	MarkRead(ctx context.Context, deviceID string, id int64) (*domain.NotificationItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
