package sessions

import (
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

// Session одна сессия записи на прием. Живет только в памяти процесса,
// уничтожается вместе с процессом - черновик эфемерен по дизайну.
type Session struct {
	ID       string
	DeviceID string
	Step     domain.BookingStep
	Draft    domain.BookingDraft

	// Record заполняется один раз при переходе в StepCompleted
	Record *domain.BookingRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SelectionUpdate частичное обновление полей шага выбора.
// nil = поле не меняется.
type SelectionUpdate struct {
	Service  *string
	Date     *time.Time
	TimeSlot *string
}

// PersonalInfo поля шага персональных данных
type PersonalInfo struct {
	Name  string
	CCCD  string
	Phone string
	Email *string
	Note  *string
}
