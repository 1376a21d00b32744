package gemini

import "errors"

var (
	// ErrUnavailable возвращается, когда бэкенд недоступен или вернул ошибку
	ErrUnavailable = errors.New("gemini: backend unavailable")

	// ErrEmptyResponse возвращается, когда бэкенд не вернул текст
	ErrEmptyResponse = errors.New("gemini: empty response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gemini: internal error")
)
