package get_available_dates

import (
	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	getAvailableDates "github.com/smart-taythanh/STT-CitizenService/internal/usecase/get_available_dates"
)

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []DateItem `json:"dates"`
}

// DateItem одна доступная дата
type DateItem struct {
	Date    string `json:"date"`    // YYYY-MM-DD
	Label   string `json:"label"`   // DD/MM/YYYY
	Weekday int    `json:"weekday"` // 0 = воскресенье ... 6 = суббота
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *DatesResponse {
	dates := make([]DateItem, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, DateItem{
			Date:    d.Format(domain.DateFormat),
			Label:   d.Format(domain.DateLabelFormat),
			Weekday: int(d.Weekday()),
		})
	}
	return &DatesResponse{Dates: dates}
}
