package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/internal/integrations/gemini"
	"github.com/smart-taythanh/STT-CitizenService/internal/infra/storage/profile"
)

// Reply ответ ассистента
type Reply struct {
	Text string
	// Fallback true, если бэкенд был недоступен и возвращен текст-заглушка
	Fallback bool
}

// Preferences персонализация чата устройства
type Preferences struct {
	Avatar   string
	Language string
}

// Service ведет историю диалога каждого устройства и проксирует сообщения
// в чат-бэкенд. На устройство допускается один запрос одновременно.
type Service struct {
	backend  ChatBackend
	profiles ProfileStore
	metrics  Metrics
	logger   Logger

	mu       sync.Mutex
	history  map[string][]gemini.Message
	inFlight map[string]bool
}

// NewService создает сервис ассистента
func NewService(backend ChatBackend, profiles ProfileStore, metrics Metrics, logger Logger) *Service {
	return &Service{
		backend:  backend,
		profiles: profiles,
		metrics:  metrics,
		logger:   logger,
		history:  make(map[string][]gemini.Message),
		inFlight: make(map[string]bool),
	}
}

// Send отправляет сообщение пользователя и возвращает ответ ассистента.
// Недоступность бэкенда не является ошибкой для вызывающего кода:
// в диалог добавляется текст-заглушка, Reply.Fallback = true.
func (s *Service) Send(ctx context.Context, deviceID, input string) (*Reply, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("%w: deviceID is required", ErrInvalidInput)
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	// Захватываем слот устройства: пока запрос в полете, второй не принимается
	s.mu.Lock()
	if s.inFlight[deviceID] {
		s.mu.Unlock()
		s.logger.Warn("Assistant: rejected concurrent request, device=%s", deviceID)
		return nil, ErrRequestInFlight
	}
	s.inFlight[deviceID] = true
	history := append([]gemini.Message(nil), s.history[deviceID]...)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, deviceID)
		s.mu.Unlock()
	}()

	if s.metrics != nil {
		s.metrics.IncChatRequest()
	}

	reply, err := s.backend.Send(ctx, history, input)
	if err != nil {
		// Сбой бэкенда превращается в ответ-заглушку на языке устройства
		// и не пробрасывается выше
		s.logger.Error("Assistant: backend failed, device=%s: %v", deviceID, err)
		if s.metrics != nil {
			s.metrics.IncChatFailure()
		}

		prefs := s.preferences(ctx, deviceID)
		reply = packFor(prefs.Language).Fallback

		s.appendExchange(deviceID, input, reply)
		return &Reply{Text: reply, Fallback: true}, nil
	}

	s.appendExchange(deviceID, input, reply)

	s.logger.Info("Assistant: replied, device=%s, history_len=%d", deviceID, len(history)+2)
	return &Reply{Text: reply}, nil
}

// History возвращает диалог устройства. Пустая история начинается
// с приветствия на языке устройства.
func (s *Service) History(ctx context.Context, deviceID string) ([]gemini.Message, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("%w: deviceID is required", ErrInvalidInput)
	}

	s.mu.Lock()
	existing, ok := s.history[deviceID]
	s.mu.Unlock()

	if ok {
		return append([]gemini.Message(nil), existing...), nil
	}

	prefs := s.preferences(ctx, deviceID)
	greeting := gemini.Message{Role: gemini.RoleModel, Text: packFor(prefs.Language).Greeting}

	s.mu.Lock()
	// Повторная проверка: History могли вызвать конкурентно
	if _, ok := s.history[deviceID]; !ok {
		s.history[deviceID] = []gemini.Message{greeting}
	}
	result := append([]gemini.Message(nil), s.history[deviceID]...)
	s.mu.Unlock()

	return result, nil
}

// SetPreferences сохраняет аватар и язык устройства
func (s *Service) SetPreferences(ctx context.Context, deviceID string, prefs Preferences) error {
	if deviceID == "" {
		return fmt.Errorf("%w: deviceID is required", ErrInvalidInput)
	}

	if prefs.Language != "" {
		if !isSupportedLanguage(prefs.Language) {
			return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, prefs.Language)
		}
		if err := s.profiles.Set(ctx, deviceID, profile.KeyChatLanguage, prefs.Language); err != nil {
			return err
		}
	}

	if prefs.Avatar != "" {
		if err := s.profiles.Set(ctx, deviceID, profile.KeyChatAvatar, prefs.Avatar); err != nil {
			return err
		}
	}

	return nil
}

// GetPreferences возвращает персонализацию устройства с дефолтами
func (s *Service) GetPreferences(ctx context.Context, deviceID string) (*Preferences, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("%w: deviceID is required", ErrInvalidInput)
	}
	prefs := s.preferences(ctx, deviceID)
	return &prefs, nil
}

func (s *Service) appendExchange(deviceID, input, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[deviceID] = append(s.history[deviceID],
		gemini.Message{Role: gemini.RoleUser, Text: input},
		gemini.Message{Role: gemini.RoleModel, Text: reply},
	)
}

// preferences читает персонализацию, молча откатываясь на дефолты
func (s *Service) preferences(ctx context.Context, deviceID string) Preferences {
	prefs := Preferences{Language: domain.LanguageVietnamese}

	if language, err := s.profiles.Get(ctx, deviceID, profile.KeyChatLanguage); err == nil && isSupportedLanguage(language) {
		prefs.Language = language
	} else if err != nil && !errors.Is(err, profile.ErrNotFound) {
		s.logger.Warn("Assistant: failed to read language preference, device=%s: %v", deviceID, err)
	}

	if avatar, err := s.profiles.Get(ctx, deviceID, profile.KeyChatAvatar); err == nil {
		prefs.Avatar = avatar
	}

	return prefs
}
