package complete_booking

import (
	"time"

	"github.com/smart-taythanh/STT-CitizenService/pkg/types"
)

// Request модель запроса на завершение записи
type Request struct {
	DeviceID  string
	SessionID string
	Name      string  // ФИО, как в удостоверении
	CCCD      string  // Ровно 12 цифр
	Phone     string
	Email     *string // Опционально
	Note      *string // Опционально
}

// Response модель ответа с подтвержденной записью
type Response struct {
	SessionID      string
	Code           string           // Код записи, формат TT-DDMM-HHMM-N
	Service        string
	Counter        string           // Номер окна приема
	Date           time.Time
	DateLabel      string           // DD/MM/YYYY
	TimeSlot       string           // Метка слота
	StartTime      types.TimeString
	Name           string
	CCCD           string
	NotificationID int64 // ID уведомления, добавленного в ленту
	CreatedAt      time.Time
}
