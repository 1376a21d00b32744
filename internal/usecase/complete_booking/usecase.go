package complete_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/internal/infra/storage/profile"
	"github.com/smart-taythanh/STT-CitizenService/internal/integrations/webhook"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

// webhookTimeout таймаут фоновой доставки вебхука; не привязан к контексту
// запроса, так как доставка продолжается после ответа пользователю
const webhookTimeout = 10 * time.Second

// UseCase use case завершения записи: валидация персональных данных,
// генерация кода, уведомление, best-effort вебхук и префилл профиля.
// Запись считается подтвержденной сразу после локальной валидации;
// никакой внешний вызов не может этому помешать.
type UseCase struct {
	sessionSvc   SessionService
	notifier     NotificationSink
	webhookSink  WebhookSink // nil = вебхук выключен
	profileStore ProfileStore
	metrics      Metrics
	randSource   RandSource
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionSvc SessionService,
	notifier NotificationSink,
	webhookSink WebhookSink,
	profileStore ProfileStore,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionSvc:   sessionSvc,
		notifier:     notifier,
		webhookSink:  webhookSink,
		profileStore: profileStore,
		metrics:      metrics,
		randSource:   NewRealRandSource(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithRandSource подменяет источник случайности (для тестирования)
func (uc *UseCase) WithRandSource(rnd RandSource) *UseCase {
	uc.randSource = rnd
	return uc
}

// Execute выполняет use case завершения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteBooking: device=%s, session=%s", req.DeviceID, req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CompleteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем сессию и проверяем шаг
	session, err := uc.sessionSvc.Get(ctx, req.DeviceID, req.SessionID)
	if err != nil {
		return nil, uc.mapSessionError("get session", req.SessionID, err)
	}

	if session.Step != domain.StepPersonalInfo {
		uc.logger.Warn("CompleteBooking: session=%s at step=%s", req.SessionID, session.Step)
		return nil, ErrWrongStep
	}

	// 4. Разбираем выбранный слот (гард шага Selection гарантирует непустоту)
	slot, ok := domain.FindTimeSlot(session.Draft.TimeSlot)
	if !ok {
		uc.logger.Error("CompleteBooking: session=%s has unknown slot %q", req.SessionID, session.Draft.TimeSlot)
		return nil, fmt.Errorf("%w: unknown time slot %q", ErrInternal, session.Draft.TimeSlot)
	}

	// 5. Генерируем код и строим запись
	code := generateCode(session.Draft.Date, slot.Start, uc.randSource)

	record := &domain.BookingRecord{
		Code:      code,
		Service:   session.Draft.Service,
		Counter:   domain.CounterForService(session.Draft.Service),
		Date:      session.Draft.Date,
		DateLabel: session.Draft.Date.Format(domain.DateLabelFormat),
		TimeSlot:  session.Draft.TimeSlot,
		StartTime: slot.Start,
		Name:      req.Name,
		CCCD:      req.CCCD,
		CreatedAt: now,
	}

	// 6. Переводим сессию в Completed (применяет и валидирует персональные данные)
	info := sessions.PersonalInfo{
		Name:  req.Name,
		CCCD:  req.CCCD,
		Phone: req.Phone,
		Email: req.Email,
		Note:  req.Note,
	}

	completed, err := uc.sessionSvc.Complete(ctx, req.DeviceID, req.SessionID, info, record)
	if err != nil {
		return nil, uc.mapSessionError("complete session", req.SessionID, err)
	}

	// 7. Добавляем уведомление в ленту устройства
	notification, err := uc.notifier.Push(ctx, req.DeviceID, buildNotification(record, now))
	if err != nil {
		// Запись уже подтверждена; потеря уведомления не откатывает ее
		uc.logger.Error("CompleteBooking: failed to push notification for code=%s: %v", code, err)
	}

	// 8. Сохраняем контакты для префилла будущих форм.
	//    Best-effort: ошибки только логируются.
	uc.savePrefill(ctx, req)

	// 9. Fire-and-forget вебхук. Пользователь видит успех независимо
	//    от исхода доставки.
	if uc.webhookSink != nil {
		go uc.deliverWebhook(record, req)
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCompleted()
	}

	uc.logger.Info("CompleteBooking: confirmed code=%s, counter=%s, session=%s",
		code, record.Counter, req.SessionID)

	var notificationID int64
	if notification != nil {
		notificationID = notification.ID
	}

	return &Response{
		SessionID:      completed.ID,
		Code:           record.Code,
		Service:        record.Service,
		Counter:        record.Counter,
		Date:           record.Date,
		DateLabel:      record.DateLabel,
		TimeSlot:       record.TimeSlot,
		StartTime:      record.StartTime,
		Name:           record.Name,
		CCCD:           record.CCCD,
		NotificationID: notificationID,
		CreatedAt:      record.CreatedAt,
	}, nil
}

// buildNotification строит уведомление о подтвержденной записи
func buildNotification(record *domain.BookingRecord, now time.Time) domain.NotificationItem {
	return domain.NotificationItem{
		Title: fmt.Sprintf("Lịch hẹn thành công: %s", record.Service),
		Summary: fmt.Sprintf(
			"Mã cuộc hẹn %s của ông/bà %s (CCCD: %s) đã được xác nhận vào lúc %s ngày %s.",
			record.Code, record.Name, record.CCCD, record.TimeSlot, record.DateLabel),
		Date:     now.Format("15:04 - 02/01/2006"),
		Category: domain.CategoryAnnouncement,
		IsBooking: true,
		BookingData: &domain.NotificationBookingData{
			Name:    record.Name,
			Code:    record.Code,
			Service: record.Service,
			Time:    record.TimeSlot,
			Date:    record.DateLabel,
			Counter: record.Counter,
		},
	}
}

// savePrefill сохраняет контакты в профиль устройства
func (uc *UseCase) savePrefill(ctx context.Context, req *Request) {
	values := map[string]string{
		profile.KeyUserName:  req.Name,
		profile.KeyUserCCCD:  req.CCCD,
		profile.KeyUserPhone: req.Phone,
	}
	if req.Email != nil && *req.Email != "" {
		values[profile.KeyUserEmail] = *req.Email
	}

	for key, value := range values {
		if err := uc.profileStore.Set(ctx, req.DeviceID, key, value); err != nil {
			uc.logger.Warn("CompleteBooking: failed to save prefill %s: %v", key, err)
		}
	}
}

// deliverWebhook доставляет подтвержденную запись на вебхук.
// Выполняется в отдельной горутине; ошибки логируются и считаются
// метрикой, но никогда не доходят до пользователя.
func (uc *UseCase) deliverWebhook(record *domain.BookingRecord, req *Request) {
	ctx, cancel := context.WithTimeout(context.Background(), webhookTimeout)
	defer cancel()

	payload := &webhook.BookingPayload{
		Code:        record.Code,
		Service:     record.Service,
		Counter:     record.Counter,
		Date:        record.Date.Format(domain.DateFormat),
		TimeSlot:    record.TimeSlot,
		Name:        record.Name,
		CCCD:        record.CCCD,
		Phone:       req.Phone,
		Email:       req.Email,
		Note:        req.Note,
		ConfirmedAt: record.CreatedAt.Format(time.RFC3339),
	}

	if err := uc.webhookSink.Publish(ctx, payload); err != nil {
		uc.logger.Error("CompleteBooking: webhook delivery failed for code=%s: %v", record.Code, err)
		if uc.metrics != nil {
			uc.metrics.IncWebhookFailure()
		}
	}
}

// mapSessionError транслирует ошибки сервиса сессий в ошибки usecase
func (uc *UseCase) mapSessionError(op, sessionID string, err error) error {
	switch {
	case errors.Is(err, sessions.ErrSessionNotFound):
		uc.logger.Warn("CompleteBooking: session=%s not found", sessionID)
		return ErrSessionNotFound
	case errors.Is(err, sessions.ErrAccessDenied):
		uc.logger.Warn("CompleteBooking: access denied to session=%s", sessionID)
		return ErrAccessDenied
	case errors.Is(err, sessions.ErrWrongStep):
		return ErrWrongStep
	case errors.Is(err, sessions.ErrInvalidPersonalInfo):
		return ErrInvalidPersonalInfo
	default:
		uc.logger.Error("CompleteBooking: failed to %s %s: %v", op, sessionID, err)
		return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
	}
}
