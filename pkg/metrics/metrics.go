package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCompletedTotal prometheus.Counter
	WebhookFailuresTotal   prometheus.Counter

	ChatRequestsTotal prometheus.Counter
	ChatFailuresTotal prometheus.Counter
}

// IncBookingCompleted увеличивает счетчик завершенных записей
func (m *Metrics) IncBookingCompleted() {
	if m != nil {
		m.BookingsCompletedTotal.Inc()
	}
}

// IncWebhookFailure увеличивает счетчик неудачных доставок вебхука
func (m *Metrics) IncWebhookFailure() {
	if m != nil {
		m.WebhookFailuresTotal.Inc()
	}
}

// IncChatRequest увеличивает счетчик запросов к ассистенту
func (m *Metrics) IncChatRequest() {
	if m != nil {
		m.ChatRequestsTotal.Inc()
	}
}

// IncChatFailure увеличивает счетчик ответов-заглушек ассистента
func (m *Metrics) IncChatFailure() {
	if m != nil {
		m.ChatFailuresTotal.Inc()
	}
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCompletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_completed_total",
			Help:        "Total number of completed bookings",
			ConstLabels: constLabels,
		}),

		// Вебхук best-effort: ошибки не видны пользователю,
		// этот счетчик - единственный способ их заметить
		WebhookFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_webhook_failures_total",
			Help:        "Total number of failed best-effort booking webhook deliveries",
			ConstLabels: constLabels,
		}),

		ChatRequestsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "assistant_requests_total",
			Help:        "Total number of assistant chat requests",
			ConstLabels: constLabels,
		}),

		ChatFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "assistant_failures_total",
			Help:        "Total number of assistant backend failures answered with fallback",
			ConstLabels: constLabels,
		}),
	}
}
