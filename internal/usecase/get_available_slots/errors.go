package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateNotBookable возвращается при дате вне доступного горизонта
	ErrDateNotBookable = errors.New("get_available_slots: date is not bookable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
)
