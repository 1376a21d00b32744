package webhook

// BookingPayload тело POST запроса вебхука: поля черновика, код записи и
// метка времени подтверждения
type BookingPayload struct {
	Code        string  `json:"code"`
	Service     string  `json:"service"`
	Counter     string  `json:"counter"`
	Date        string  `json:"date"` // YYYY-MM-DD
	TimeSlot    string  `json:"timeSlot"`
	Name        string  `json:"name"`
	CCCD        string  `json:"cccd"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	Note        *string `json:"note,omitempty"`
	ConfirmedAt string  `json:"confirmedAt"` // ISO-8601
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
