package profile

import (
	"context"
	"sync"
)

// MemoryStore in-memory реализация хранилища профилей.
// Используется в тестах и при запуске без Redis.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string // deviceID -> key -> value
}

// NewMemoryStore создает пустое in-memory хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]string),
	}
}

// Get возвращает значение ключа для устройства
func (s *MemoryStore) Get(_ context.Context, deviceID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	device, ok := s.data[deviceID]
	if !ok {
		return "", ErrNotFound
	}

	val, ok := device[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

// Set сохраняет значение ключа для устройства
func (s *MemoryStore) Set(_ context.Context, deviceID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.data[deviceID]
	if !ok {
		device = make(map[string]string)
		s.data[deviceID] = device
	}
	device[key] = value
	return nil
}

// Clear удаляет перечисленные ключи устройства
func (s *MemoryStore) Clear(_ context.Context, deviceID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.data[deviceID]
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(device, key)
	}
	return nil
}
