package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому устройству
	ErrAccessDenied = errors.New("sessions: access denied")

	// ErrWrongStep возвращается при операции, недопустимой на текущем шаге
	ErrWrongStep = errors.New("sessions: operation not allowed at current step")

	// ErrSelectionIncomplete возвращается, когда услуга или слот не выбраны
	ErrSelectionIncomplete = errors.New("sessions: service and time slot are required")

	// ErrUnknownService возвращается при услуге вне каталога
	ErrUnknownService = errors.New("sessions: unknown service")

	// ErrDateNotBookable возвращается при дате вне доступного горизонта
	ErrDateNotBookable = errors.New("sessions: date is not bookable")

	// ErrSlotNotAvailable возвращается при слоте, недоступном для выбранной даты
	ErrSlotNotAvailable = errors.New("sessions: time slot is not available for this date")

	// ErrInvalidPersonalInfo возвращается, когда персональные данные не проходят гард
	ErrInvalidPersonalInfo = errors.New("sessions: invalid personal info")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sessions: invalid input data")
)
