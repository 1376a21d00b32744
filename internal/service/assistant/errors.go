package assistant

import "errors"

var (
	// ErrRequestInFlight возвращается при попытке отправить сообщение,
	// пока предыдущий запрос устройства еще обрабатывается
	ErrRequestInFlight = errors.New("assistant: request already in flight")

	// ErrEmptyInput возвращается при пустом сообщении
	ErrEmptyInput = errors.New("assistant: empty input")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assistant: invalid input data")

	// ErrUnsupportedLanguage возвращается при языке вне поддерживаемых
	ErrUnsupportedLanguage = errors.New("assistant: unsupported language")
)
