package update_selection

import (
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

// UpdateSelectionRequest HTTP request model. Все поля опциональны:
// отсутствующее поле не меняется, пустая строка очищает выбор.
type UpdateSelectionRequest struct {
	Service  *string `json:"service,omitempty"`
	Date     *string `json:"date,omitempty"` // "2025-05-20"
	TimeSlot *string `json:"timeSlot,omitempty"`
}

// ToServiceUpdate конвертирует HTTP запрос в модель сервиса
func (r *UpdateSelectionRequest) ToServiceUpdate() (sessions.SelectionUpdate, error) {
	upd := sessions.SelectionUpdate{
		Service:  r.Service,
		TimeSlot: r.TimeSlot,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return sessions.SelectionUpdate{}, err
		}
		upd.Date = &date
	}

	return upd, nil
}
