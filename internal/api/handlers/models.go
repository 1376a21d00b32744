package handlers

import (
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

// SessionResponse HTTP модель сессии записи. Общая для всех handlers
// флоу записи: страницы шагов рендерятся из одного и того же снимка.
type SessionResponse struct {
	SessionID string        `json:"sessionId"`
	Step      string        `json:"step"`
	Selection SelectionView `json:"selection"`
	Personal  *PersonalView `json:"personalInfo,omitempty"`
	Booking   *BookingView  `json:"booking,omitempty"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// SelectionView поля шага выбора услуги
type SelectionView struct {
	Service  string `json:"service"`
	Date     string `json:"date"` // YYYY-MM-DD
	TimeSlot string `json:"timeSlot"`
}

// PersonalView поля шага персональных данных
type PersonalView struct {
	Name  string  `json:"name"`
	CCCD  string  `json:"cccd"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
	Note  *string `json:"note,omitempty"`
}

// BookingView подтвержденная запись внутри завершенной сессии
type BookingView struct {
	Code      string `json:"code"`
	Service   string `json:"service"`
	Counter   string `json:"counter"`
	Date      string `json:"date"`      // YYYY-MM-DD
	DateLabel string `json:"dateLabel"` // DD/MM/YYYY
	TimeSlot  string `json:"timeSlot"`
	StartTime string `json:"startTime"`
	Name      string `json:"name"`
	CCCD      string `json:"cccd"`
	CreatedAt string `json:"createdAt"`
}

// FromSession конвертирует сессию сервиса в HTTP модель
func FromSession(s *sessions.Session) *SessionResponse {
	resp := &SessionResponse{
		SessionID: s.ID,
		Step:      string(s.Step),
		Selection: SelectionView{
			Service:  s.Draft.Service,
			Date:     s.Draft.Date.Format(domain.DateFormat),
			TimeSlot: s.Draft.TimeSlot,
		},
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}

	// Персональные данные отдаем начиная с шага PersonalInfo
	if s.Step != domain.StepSelection {
		resp.Personal = &PersonalView{
			Name:  s.Draft.Name,
			CCCD:  s.Draft.CCCD,
			Phone: s.Draft.Phone,
			Email: s.Draft.Email,
			Note:  s.Draft.Note,
		}
	}

	if s.Record != nil {
		resp.Booking = FromRecord(s.Record)
	}

	return resp
}

// FromRecord конвертирует подтвержденную запись в HTTP модель
func FromRecord(r *domain.BookingRecord) *BookingView {
	return &BookingView{
		Code:      r.Code,
		Service:   r.Service,
		Counter:   r.Counter,
		Date:      r.Date.Format(domain.DateFormat),
		DateLabel: r.DateLabel,
		TimeSlot:  r.TimeSlot,
		StartTime: r.StartTime.String(),
		Name:      r.Name,
		CCCD:      r.CCCD,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
