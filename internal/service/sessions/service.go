package sessions

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

// Service владеет сессиями записи и переходами линейного флоу
// Selection -> PersonalInfo -> Completed.
// Все состояние в памяти, доступ под одним мьютексом: в рамках одной сессии
// запросы приходят последовательно, конкуренции по дизайну нет.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session

	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис сессий записи
func NewService(horizonDays int, logger Logger) *Service {
	return &Service{
		sessions:     make(map[string]*Session),
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Start создает новую сессию на шаге Selection.
// Дата по умолчанию - первая доступная дата горизонта.
func (s *Service) Start(_ context.Context, deviceID string) (*Session, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, fmt.Errorf("%w: deviceID is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	dates := domain.AvailableDates(now, s.horizonDays)

	session := &Session{
		ID:       uuid.NewString(),
		DeviceID: deviceID,
		Step:     domain.StepSelection,
		Draft: domain.BookingDraft{
			Date: dates[0],
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("Sessions: started session id=%s device=%s", session.ID, deviceID)
	return s.snapshot(session), nil
}

// Get возвращает сессию устройства
func (s *Service) Get(_ context.Context, deviceID, sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(deviceID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(session), nil
}

// UpdateSelection обновляет поля шага выбора. Допустимо только на шаге
// Selection. Смена даты очищает слот, который для новой даты недоступен.
func (s *Service) UpdateSelection(_ context.Context, deviceID, sessionID string, upd SelectionUpdate) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(deviceID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != domain.StepSelection {
		s.logger.Warn("Sessions: selection update rejected at step=%s, session=%s", session.Step, sessionID)
		return nil, ErrWrongStep
	}

	now := s.timeProvider.Now()

	if upd.Service != nil {
		if *upd.Service != "" && !domain.IsKnownService(*upd.Service) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownService, *upd.Service)
		}
		session.Draft.Service = *upd.Service
	}

	if upd.Date != nil {
		if !domain.IsBookableDate(*upd.Date, now, s.horizonDays) {
			return nil, fmt.Errorf("%w: %s", ErrDateNotBookable, upd.Date.Format(domain.DateFormat))
		}
		session.Draft.Date = *upd.Date

		// Инвариант: выбранный слот всегда принадлежит допустимому набору
		// текущей даты. Ставший недоступным слот сбрасывается.
		if session.Draft.TimeSlot != "" &&
			!domain.IsValidSlotFor(session.Draft.TimeSlot, session.Draft.Date, now) {
			s.logger.Info("Sessions: clearing slot %q after date change, session=%s",
				session.Draft.TimeSlot, sessionID)
			session.Draft.TimeSlot = ""
		}
	}

	if upd.TimeSlot != nil {
		if *upd.TimeSlot != "" && !domain.IsValidSlotFor(*upd.TimeSlot, session.Draft.Date, now) {
			return nil, fmt.Errorf("%w: %q", ErrSlotNotAvailable, *upd.TimeSlot)
		}
		session.Draft.TimeSlot = *upd.TimeSlot
	}

	session.UpdatedAt = now
	return s.snapshot(session), nil
}

// ConfirmSelection переводит Selection -> PersonalInfo.
// Гард: услуга и слот выбраны. Побочных эффектов нет.
func (s *Service) ConfirmSelection(_ context.Context, deviceID, sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(deviceID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != domain.StepSelection {
		return nil, ErrWrongStep
	}

	if !session.Draft.HasSelection() {
		s.logger.Warn("Sessions: confirm rejected, selection incomplete, session=%s", sessionID)
		return nil, ErrSelectionIncomplete
	}

	session.Step = domain.StepPersonalInfo
	session.UpdatedAt = s.timeProvider.Now()

	s.logger.Info("Sessions: session=%s advanced to %s", sessionID, session.Step)
	return s.snapshot(session), nil
}

// Back возвращает PersonalInfo -> Selection. Всегда разрешен на шаге
// PersonalInfo, все введенные поля сохраняются.
func (s *Service) Back(_ context.Context, deviceID, sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(deviceID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != domain.StepPersonalInfo {
		return nil, ErrWrongStep
	}

	session.Step = domain.StepSelection
	session.UpdatedAt = s.timeProvider.Now()
	return s.snapshot(session), nil
}

// Complete применяет персональные данные и переводит PersonalInfo -> Completed.
// Гард: непустое имя, CCCD из 12 цифр, непустой телефон. Record сохраняется
// ровно один раз; Completed - терминальный шаг.
func (s *Service) Complete(_ context.Context, deviceID, sessionID string, info PersonalInfo, record *domain.BookingRecord) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.find(deviceID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != domain.StepPersonalInfo {
		return nil, ErrWrongStep
	}

	session.Draft.Name = info.Name
	session.Draft.CCCD = info.CCCD
	session.Draft.Phone = info.Phone
	session.Draft.Email = info.Email
	session.Draft.Note = info.Note

	if !session.Draft.HasValidPersonalInfo() {
		s.logger.Warn("Sessions: complete rejected, invalid personal info, session=%s", sessionID)
		return nil, ErrInvalidPersonalInfo
	}

	session.Step = domain.StepCompleted
	session.Record = record
	session.UpdatedAt = s.timeProvider.Now()

	s.logger.Info("Sessions: session=%s completed, code=%s", sessionID, record.Code)
	return s.snapshot(session), nil
}

// find ожидает удерживаемый s.mu
func (s *Service) find(deviceID, sessionID string) (*Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.DeviceID != deviceID {
		return nil, ErrAccessDenied
	}
	return session, nil
}

// snapshot возвращает копию, чтобы вызывающий код не мутировал состояние
// под чужим мьютексом
func (s *Service) snapshot(session *Session) *Session {
	copied := *session
	return &copied
}
