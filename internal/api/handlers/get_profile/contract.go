package get_profile

import "context"

// ProfileStore интерфейс key/value хранилища профиля устройства
type ProfileStore interface {
	Get(ctx context.Context, deviceID, key string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
