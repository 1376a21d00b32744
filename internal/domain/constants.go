package domain

// Booking flow constants
const (
	// HorizonBusinessDays сколько рабочих дат (без воскресений) доступно для записи
	HorizonBusinessDays = 14

	// SaturdayLastHour по субботам доступны только слоты с началом до 12:00
	SaturdayLastHour = 12

	// CCCDLength длина номера удостоверения личности
	CCCDLength = 12

	// CodePrefix префикс кода записи
	CodePrefix = "TT"

	// CodeRandMax случайный суффикс кода лежит в [1, CodeRandMax]
	CodeRandMax = 100

	MaxNoteLength = 500
)

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	DateLabelFormat = "02/01/2006" // DD/MM/YYYY, отображение для пользователя
)

// Supported UI languages
const (
	LanguageVietnamese = "vi"
	LanguageEnglish    = "en"
)
