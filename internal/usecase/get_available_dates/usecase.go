package get_available_dates

import (
	"context"
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

// Response модель ответа со списком доступных дат
type Response struct {
	Dates []time.Time // Упорядоченный список дат, воскресенья исключены
}

// UseCase use case для получения доступных дат записи
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

// Execute возвращает горизонт доступных дат начиная с завтрашнего дня
func (uc *UseCase) Execute(_ context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	dates := domain.AvailableDates(now, uc.horizonDays)

	uc.logger.Info("GetAvailableDates: returned %d dates starting %s",
		len(dates), dates[0].Format(domain.DateFormat))

	return &Response{Dates: dates}, nil
}
