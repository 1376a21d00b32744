package domain

// NotificationCategory represents the category of a notification
type NotificationCategory string

const (
	CategoryAnnouncement NotificationCategory = "Thông báo"
	CategoryNews         NotificationCategory = "Tin tức"
	CategoryEvent        NotificationCategory = "Sự kiện"
)

// NotificationItem represents one entry of the per-device notification feed.
// Appended-only: items are prepended in completion order and never deleted
// within a session. Only IsRead is mutated after creation.
type NotificationItem struct {
	ID          int64 // Монотонный уникальный ID в рамках процесса
	Title       string
	Summary     string
	Date        string // "HH:MM - DD/MM/YYYY", как отображается пользователю
	Category    NotificationCategory
	IsRead      bool
	IsImportant bool
	URL         *string
	IsBooking   bool
	BookingData *NotificationBookingData
}

// NotificationBookingData данные записи, вложенные в уведомление о брони
type NotificationBookingData struct {
	Name    string
	Code    string
	Service string
	Time    string // Метка слота
	Date    string // DD/MM/YYYY
	Counter string
}
