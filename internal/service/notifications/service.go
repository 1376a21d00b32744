package notifications

import (
	"context"
	"sync"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

// Начальное уведомление ленты - у нового устройства лента не пустая
const (
	seedTitle   = "Triển khai cài đặt app Smart Tây Thạnh cho toàn dân"
	seedSummary = "UBND Phường khuyến khích người dân sử dụng ứng dụng để nộp hồ sơ trực tuyến và định danh công dân."
	seedDate    = "08:00 - 15/05/2025"
)

// Service append-only лента уведомлений с привязкой к устройству.
// Новые элементы добавляются в начало в порядке поступления; в рамках
// сессии уведомления никогда не удаляются, мутируется только IsRead.
type Service struct {
	mu     sync.Mutex
	feeds  map[string][]*domain.NotificationItem // deviceID -> лента
	nextID int64

	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис уведомлений
func NewService(logger Logger) *Service {
	return &Service{
		feeds:        make(map[string][]*domain.NotificationItem),
		nextID:       1,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Push добавляет уведомление в начало ленты устройства и присваивает ему
// монотонный ID
func (s *Service) Push(_ context.Context, deviceID string, item domain.NotificationItem) (*domain.NotificationItem, error) {
	if deviceID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	feed := s.feed(deviceID)

	item.ID = s.nextID
	s.nextID++

	stored := item
	s.feeds[deviceID] = append([]*domain.NotificationItem{&stored}, feed...)

	s.logger.Info("Notifications: pushed id=%d device=%s booking=%t", stored.ID, deviceID, stored.IsBooking)
	return &stored, nil
}

// List возвращает ленту устройства, новые элементы первыми
func (s *Service) List(_ context.Context, deviceID string) ([]*domain.NotificationItem, error) {
	if deviceID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	feed := s.feed(deviceID)

	result := make([]*domain.NotificationItem, 0, len(feed))
	for _, item := range feed {
		copied := *item
		result = append(result, &copied)
	}
	return result, nil
}

// MarkRead помечает уведомление прочитанным. Единственная разрешенная
// мутация существующего элемента.
func (s *Service) MarkRead(_ context.Context, deviceID string, id int64) (*domain.NotificationItem, error) {
	if deviceID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.feed(deviceID) {
		if item.ID == id {
			item.IsRead = true
			copied := *item
			return &copied, nil
		}
	}

	s.logger.Warn("Notifications: mark read failed, id=%d not found for device=%s", id, deviceID)
	return nil, ErrNotificationNotFound
}

// UnreadCount возвращает количество непрочитанных уведомлений устройства
func (s *Service) UnreadCount(_ context.Context, deviceID string) (int, error) {
	if deviceID == "" {
		return 0, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.feed(deviceID) {
		if !item.IsRead {
			count++
		}
	}
	return count, nil
}

// feed ожидает удерживаемый s.mu; лениво создает ленту с начальным
// уведомлением
func (s *Service) feed(deviceID string) []*domain.NotificationItem {
	if feed, ok := s.feeds[deviceID]; ok {
		return feed
	}

	seed := &domain.NotificationItem{
		ID:          s.nextID,
		Title:       seedTitle,
		Summary:     seedSummary,
		Date:        seedDate,
		Category:    domain.CategoryAnnouncement,
		IsImportant: true,
	}
	s.nextID++

	s.feeds[deviceID] = []*domain.NotificationItem{seed}
	return s.feeds[deviceID]
}
