package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	backToSelectionHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/back_to_selection"
	chatMessageHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/chat_message"
	chatPreferencesHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/chat_preferences"
	completeBookingHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/complete_booking"
	confirmSelectionHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/confirm_selection"
	getAvailableDatesHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/get_available_slots"
	getBookingSessionHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/get_booking_session"
	getProfileHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/get_profile"
	getTicketHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/get_ticket"
	listNotificationsHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/list_notifications"
	loginHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/login"
	logoutHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/logout"
	readNotificationHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/read_notification"
	startBookingHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/start_booking"
	updateSelectionHandler "github.com/smart-taythanh/STT-CitizenService/internal/api/handlers/update_selection"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/config"
	"github.com/smart-taythanh/STT-CitizenService/internal/infra/storage/profile"
	"github.com/smart-taythanh/STT-CitizenService/internal/infra/ticket"
	geminiClient "github.com/smart-taythanh/STT-CitizenService/internal/integrations/gemini"
	webhookClient "github.com/smart-taythanh/STT-CitizenService/internal/integrations/webhook"
	assistantService "github.com/smart-taythanh/STT-CitizenService/internal/service/assistant"
	notificationsService "github.com/smart-taythanh/STT-CitizenService/internal/service/notifications"
	sessionsService "github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
	completeBookingUC "github.com/smart-taythanh/STT-CitizenService/internal/usecase/complete_booking"
	getAvailableDatesUC "github.com/smart-taythanh/STT-CitizenService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/smart-taythanh/STT-CitizenService/internal/usecase/get_available_slots"
	"github.com/smart-taythanh/STT-CitizenService/pkg/logger"
	"github.com/smart-taythanh/STT-CitizenService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting STT-CitizenService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище профилей: Redis в проде, in-memory без адреса
	type ProfileStore interface {
		Get(ctx context.Context, deviceID, key string) (string, error)
		Set(ctx context.Context, deviceID, key, value string) error
		Clear(ctx context.Context, deviceID string, keys ...string) error
	}
	var profileStore ProfileStore

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		profileStore = profile.NewRedisStore(rdb)
		log.Info("Connected to redis at %s (db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	} else {
		profileStore = profile.NewMemoryStore()
		log.Warn("Redis address is empty, using in-memory profile store")
	}

	// Чат-бэкенд Gemini. Пустой ключ не мешает старту: сбои запросов
	// превращаются в ответы-заглушки на стороне ассистента.
	gemini, err := geminiClient.NewClient(
		context.Background(),
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.Temperature,
		cfg.Gemini.TopP,
		time.Duration(cfg.Gemini.Timeout)*time.Second,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize gemini client: %v", err)
	}
	defer gemini.Close()
	log.Info("Gemini client initialized (model=%s)", cfg.Gemini.Model)

	// Best-effort вебхук бронирований (если включен)
	var webhookSink completeBookingUC.WebhookSink
	if cfg.Webhook.Enabled {
		webhookSink = webhookClient.NewClient(
			cfg.Webhook.URL,
			time.Duration(cfg.Webhook.Timeout)*time.Second,
			log,
		)
		log.Info("Booking webhook enabled (url=%s, timeout=%ds)", cfg.Webhook.URL, cfg.Webhook.Timeout)
	}

	// Рендерер PNG фишки
	ticketRenderer, err := ticket.NewRenderer()
	if err != nil {
		log.Fatal("Failed to initialize ticket renderer: %v", err)
	}

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(cfg.Booking.HorizonDays, log)
	notificationSvc := notificationsService.NewService(log)
	assistantSvc := assistantService.NewService(gemini, profileStore, metricsCollector, log)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(cfg.Booking.HorizonDays, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(cfg.Booking.HorizonDays, log)
	completeBookingUseCase := completeBookingUC.NewUseCase(
		sessionSvc,
		notificationSvc,
		webhookSink,
		profileStore,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	startBooking := startBookingHandler.NewHandler(sessionSvc, log)
	getBookingSession := getBookingSessionHandler.NewHandler(sessionSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(sessionSvc, log)
	confirmSelection := confirmSelectionHandler.NewHandler(sessionSvc, log)
	backToSelection := backToSelectionHandler.NewHandler(sessionSvc, log)
	completeBooking := completeBookingHandler.NewHandler(completeBookingUseCase, log)
	getTicket := getTicketHandler.NewHandler(sessionSvc, ticketRenderer, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	readNotification := readNotificationHandler.NewHandler(notificationSvc, log)
	chatMessage := chatMessageHandler.NewHandler(assistantSvc, log)
	chatPreferences := chatPreferencesHandler.NewHandler(assistantSvc, log)
	login := loginHandler.NewHandler(profileStore, log)
	logout := logoutHandler.NewHandler(profileStore, log)
	getProfile := getProfileHandler.NewHandler(profileStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без идентификации устройства)
	// ============================================================

	// Доступные даты записи
	api.HandleFunc("/booking/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/booking/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Device-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.DeviceAuth)

	// --- Флоу записи на прием ---
	protected.HandleFunc("/booking/sessions", startBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking/sessions/{sessionId}", getBookingSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking/sessions/{sessionId}/selection", updateSelection.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/booking/sessions/{sessionId}/confirm", confirmSelection.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking/sessions/{sessionId}/back", backToSelection.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking/sessions/{sessionId}/complete", completeBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking/sessions/{sessionId}/ticket", getTicket.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", readNotification.Handle).Methods(http.MethodPatch)

	// --- Ассистент ---
	protected.HandleFunc("/assistant/messages", chatMessage.HandleSend).Methods(http.MethodPost)
	protected.HandleFunc("/assistant/messages", chatMessage.HandleHistory).Methods(http.MethodGet)
	protected.HandleFunc("/assistant/preferences", chatPreferences.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/assistant/preferences", chatPreferences.HandleSet).Methods(http.MethodPut)

	// --- Профиль ---
	protected.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/profile", getProfile.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
