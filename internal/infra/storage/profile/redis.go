package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore хранилище профилей устройств поверх Redis.
// Ключи неймспейсятся идентификатором устройства.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает хранилище поверх существующего клиента
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(deviceID, key string) string {
	return fmt.Sprintf("profile:%s:%s", deviceID, key)
}

// Get возвращает значение ключа для устройства
func (s *RedisStore) Get(ctx context.Context, deviceID, key string) (string, error) {
	val, err := s.client.Get(ctx, redisKey(deviceID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: get %s: %v", ErrInternal, key, err)
	}
	return val, nil
}

// Set сохраняет значение ключа для устройства (без TTL)
func (s *RedisStore) Set(ctx context.Context, deviceID, key, value string) error {
	if err := s.client.Set(ctx, redisKey(deviceID, key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrInternal, key, err)
	}
	return nil
}

// Clear удаляет перечисленные ключи устройства
func (s *RedisStore) Clear(ctx context.Context, deviceID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	namespaced := make([]string, 0, len(keys))
	for _, key := range keys {
		namespaced = append(namespaced, redisKey(deviceID, key))
	}

	if err := s.client.Del(ctx, namespaced...).Err(); err != nil {
		return fmt.Errorf("%w: clear: %v", ErrInternal, err)
	}
	return nil
}
