package complete_booking

import (
	"context"
	"math/rand"
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/internal/integrations/webhook"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

// SessionService интерфейс сервиса сессий записи
type SessionService interface {
	Get(ctx context.Context, deviceID, sessionID string) (*sessions.Session, error)
	Complete(ctx context.Context, deviceID, sessionID string, info sessions.PersonalInfo, record *domain.BookingRecord) (*sessions.Session, error)
}

// NotificationSink интерфейс ленты уведомлений, принимающей завершенную запись
type NotificationSink interface {
	Push(ctx context.Context, deviceID string, item domain.NotificationItem) (*domain.NotificationItem, error)
}

// WebhookSink best-effort вебхук подтвержденных записей.
// nil-sink означает, что вебхук выключен конфигурацией.
type WebhookSink interface {
	Publish(ctx context.Context, payload *webhook.BookingPayload) error
}

// ProfileStore интерфейс хранилища профиля устройства (префилл будущих форм)
type ProfileStore interface {
	Set(ctx context.Context, deviceID, key, value string) error
}

// Metrics интерфейс счетчиков завершения записи
type Metrics interface {
	IncBookingCompleted()
	IncWebhookFailure()
}

// RandSource источник случайного суффикса кода записи.
// Инжектируется, чтобы тесты могли зафиксировать значение.
type RandSource interface {
	Intn(n int) int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// RealRandSource источник случайности для production
type RealRandSource struct {
	rnd *rand.Rand
}

// NewRealRandSource создает источник, засеянный текущим временем
func NewRealRandSource() *RealRandSource {
	return &RealRandSource{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Intn возвращает случайное число в [0, n)
func (s *RealRandSource) Intn(n int) int {
	return s.rnd.Intn(n)
}
