package get_available_slots

import (
	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	getAvailableSlots "github.com/smart-taythanh/STT-CitizenService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date        string     `json:"date"` // YYYY-MM-DD
	MorningOnly bool       `json:"morningOnly"`
	Slots       []SlotItem `json:"slots"`
}

// SlotItem один доступный слот
type SlotItem struct {
	Label     string `json:"label"`     // "08:00 - 08:30"
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "08:30"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotItem, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotItem{
			Label:     s.Label,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}
	return &SlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		MorningOnly: resp.MorningOnly,
		Slots:       slots,
	}
}
