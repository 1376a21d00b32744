package complete_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия записи не найдена
	ErrSessionNotFound = errors.New("complete_booking: session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому устройству
	ErrAccessDenied = errors.New("complete_booking: access denied")

	// ErrWrongStep возвращается, когда сессия не на шаге персональных данных
	ErrWrongStep = errors.New("complete_booking: session is not at the personal info step")

	// ErrInvalidPersonalInfo возвращается, когда персональные данные не проходят гард:
	// пустое имя, CCCD не из 12 цифр или пустой телефон
	ErrInvalidPersonalInfo = errors.New("complete_booking: invalid personal info")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_booking: internal error")
)
