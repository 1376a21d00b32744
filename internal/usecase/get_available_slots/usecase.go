package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(horizonDays int, logger Logger) *UseCase {
	return &UseCase{
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Проверяем, что дата входит в горизонт записи
	if !domain.IsBookableDate(req.Date, now, uc.horizonDays) {
		uc.logger.Warn("GetAvailableSlots: date %s is outside the booking horizon", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s", ErrDateNotBookable, req.Date.Format(domain.DateFormat))
	}

	// 5. Фильтруем каталог слотов: суббота - только утро,
	//    сегодняшняя дата - только будущие слоты
	valid := domain.ValidSlotsFor(req.Date, now)

	slots := make([]Slot, 0, len(valid))
	for _, slot := range valid {
		slots = append(slots, Slot{
			Label:     slot.Label,
			StartTime: slot.Start,
			EndTime:   slot.End,
		})
	}

	uc.logger.Info("GetAvailableSlots: returned %d slots for %s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:        req.Date,
		MorningOnly: req.Date.Weekday() == time.Saturday,
		Slots:       slots,
	}, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
