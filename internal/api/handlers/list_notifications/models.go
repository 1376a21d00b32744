package list_notifications

import (
	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

// FeedResponse HTTP response model ленты уведомлений
type FeedResponse struct {
	Items       []NotificationItem `json:"items"`
	UnreadCount int                `json:"unreadCount"`
}

// NotificationItem одно уведомление ленты
type NotificationItem struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Date        string       `json:"date"` // "HH:MM - DD/MM/YYYY"
	Category    string       `json:"category"`
	IsRead      bool         `json:"isRead"`
	IsImportant bool         `json:"isImportant"`
	URL         *string      `json:"url,omitempty"`
	IsBooking   bool         `json:"isBooking"`
	BookingData *BookingData `json:"bookingData,omitempty"`
}

// BookingData данные записи внутри уведомления о подтвержденной брони
type BookingData struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Service string `json:"service"`
	Time    string `json:"time"`
	Date    string `json:"date"`
	Counter string `json:"counter"`
}

// FromDomain конвертирует доменные уведомления в HTTP модель
func FromDomain(items []*domain.NotificationItem, unread int) *FeedResponse {
	result := make([]NotificationItem, 0, len(items))
	for _, item := range items {
		converted := NotificationItem{
			ID:          item.ID,
			Title:       item.Title,
			Summary:     item.Summary,
			Date:        item.Date,
			Category:    string(item.Category),
			IsRead:      item.IsRead,
			IsImportant: item.IsImportant,
			URL:         item.URL,
			IsBooking:   item.IsBooking,
		}
		if item.BookingData != nil {
			converted.BookingData = &BookingData{
				Name:    item.BookingData.Name,
				Code:    item.BookingData.Code,
				Service: item.BookingData.Service,
				Time:    item.BookingData.Time,
				Date:    item.BookingData.Date,
				Counter: item.BookingData.Counter,
			}
		}
		result = append(result, converted)
	}
	return &FeedResponse{Items: result, UnreadCount: unread}
}
