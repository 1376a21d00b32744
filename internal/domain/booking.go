package domain

import (
	"strings"
	"time"

	"github.com/smart-taythanh/STT-CitizenService/pkg/types"
)

// BookingStep represents the step of the booking form flow
type BookingStep string

const (
	StepSelection    BookingStep = "selection"
	StepPersonalInfo BookingStep = "personal_info"
	StepCompleted    BookingStep = "completed"
)

// BookingDraft represents an in-progress appointment form.
// Owned by a single booking session, discarded when the session ends.
type BookingDraft struct {
	Service  string    // Выбранная услуга (пусто = не выбрано)
	Date     time.Time // Дата приема (без времени)
	TimeSlot string    // Метка слота, например "08:00 - 08:30" (пусто = не выбрано)
	Name     string    // ФИО заявителя
	CCCD     string    // Номер удостоверения личности (ровно 12 цифр)
	Phone    string
	Email    *string
	Note     *string
}

// HasSelection returns true if both service and time slot are chosen
func (d *BookingDraft) HasSelection() bool {
	return d.Service != "" && d.TimeSlot != ""
}

// HasValidPersonalInfo returns true if the personal info satisfies the
// completion guard: non-empty name, 12-digit CCCD, non-empty phone
func (d *BookingDraft) HasValidPersonalInfo() bool {
	return strings.TrimSpace(d.Name) != "" &&
		IsValidCCCD(d.CCCD) &&
		strings.TrimSpace(d.Phone) != ""
}

// IsValidCCCD проверяет, что номер CCCD состоит ровно из 12 цифр
func IsValidCCCD(cccd string) bool {
	if len(cccd) != CCCDLength {
		return false
	}
	for _, r := range cccd {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BookingRecord represents a confirmed appointment.
// Immutable, produced exactly once per completed draft.
type BookingRecord struct {
	Code      string // Например "TT-1506-0800-42"
	Service   string
	Counter   string // Номер окна приема
	Date      time.Time
	DateLabel string // Дата для отображения, DD/MM/YYYY
	TimeSlot  string // Метка слота
	StartTime types.TimeString
	Name      string
	CCCD      string
	CreatedAt time.Time
}
