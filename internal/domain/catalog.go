package domain

// Services фиксированный перечень услуг центра
var Services = []string{
	"Chứng thực bản sao/chữ ký",
	"Hộ tịch (Khai sinh/Kết hôn)",
	"Bảo trợ xã hội & Chính sách",
	"Xác nhận tình trạng hôn nhân",
	"Thủ tục đất đai/xây dựng",
	"Đăng ký hộ kinh doanh",
	"Khác (Tư vấn hành chính)",
}

// DefaultCounter окно приема для неизвестных услуг
const DefaultCounter = "01"

// serviceCounters маппинг услуги на номер окна приема
var serviceCounters = map[string]string{
	"Chứng thực bản sao/chữ ký":    "07",
	"Hộ tịch (Khai sinh/Kết hôn)":  "10",
	"Xác nhận tình trạng hôn nhân": "10",
	"Bảo trợ xã hội & Chính sách":  "03",
	"Thủ tục đất đai/xây dựng":     "11",
	"Đăng ký hộ kinh doanh":        "12",
}

// CounterForService returns the counter number a citizen is routed to for
// the given service. Unknown or empty service is not an error, it degrades
// to DefaultCounter.
func CounterForService(service string) string {
	if counter, ok := serviceCounters[service]; ok {
		return counter
	}
	return DefaultCounter
}

// IsKnownService returns true if the service belongs to the fixed catalog
func IsKnownService(service string) bool {
	for _, s := range Services {
		if s == service {
			return true
		}
	}
	return false
}

// allTimeSlotLabels 15 получасовых слотов: утренний блок, обеденный перерыв,
// дневной блок
var allTimeSlotLabels = []string{
	"07:30 - 08:00", "08:00 - 08:30", "08:30 - 09:00", "09:00 - 09:30",
	"09:30 - 10:00", "10:00 - 10:30", "10:30 - 11:00", "11:00 - 11:30",
	"13:30 - 14:00", "14:00 - 14:30", "14:30 - 15:00", "15:00 - 15:30",
	"15:30 - 16:00", "16:00 - 16:30", "16:30 - 17:00",
}

// AllTimeSlots returns the full ordered slot catalog
func AllTimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, len(allTimeSlotLabels))
	for _, label := range allTimeSlotLabels {
		slot, err := ParseTimeSlot(label)
		if err != nil {
			// Каталог фиксированный, метки валидируются тестами
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// FindTimeSlot returns the catalog slot with the given label
func FindTimeSlot(label string) (TimeSlot, bool) {
	for _, slot := range AllTimeSlots() {
		if slot.Label == label {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
