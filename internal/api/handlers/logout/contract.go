package logout

import "context"

// ProfileStore интерфейс key/value хранилища профиля устройства
type ProfileStore interface {
	Clear(ctx context.Context, deviceID string, keys ...string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
