package login

import "context"

// ProfileStore интерфейс key/value хранилища профиля устройства
type ProfileStore interface {
	Set(ctx context.Context, deviceID, key, value string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
