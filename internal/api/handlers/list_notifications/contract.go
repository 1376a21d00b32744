package list_notifications

import (
	"context"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

type NotificationService interface {
	List(ctx context.Context, deviceID string) ([]*domain.NotificationItem, error)
	UnreadCount(ctx context.Context, deviceID string) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
