package get_available_slots

import (
	"time"

	"github.com/smart-taythanh/STT-CitizenService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date        time.Time // Дата, на которую запрашивались слоты
	MorningOnly bool      // true по субботам: доступен только утренний блок
	Slots       []Slot    // Упорядоченный список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	Label     string           // Метка слота, например "08:00 - 08:30"
	StartTime types.TimeString // Время начала слота
	EndTime   types.TimeString // Время конца слота
}
