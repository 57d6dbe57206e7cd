package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mediscan/mediscan/internal/domain/providers"
	redisclient "github.com/mediscan/mediscan/internal/infrastructure/clients/redis"
)

// RedisStore implements StorageProvider on Redis, for deployments where the
// scan history and feedback blobs should survive the local machine. Keys are
// stored without expiration; this is durable state, not a cache.
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore creates a new Redis-backed storage provider
func NewRedisStore(client *redisclient.Client) providers.StorageProvider {
	return &RedisStore{client: client}
}

// Get retrieves the blob stored under key
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.Client().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", providers.ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from storage: %w", err)
	}
	return result, nil
}

// Set stores a blob under key, replacing any previous value
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in storage: %w", err)
	}
	return nil
}

// Delete removes a key; deleting an absent key is not an error
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete from storage: %w", err)
	}
	return nil
}

// Exists checks whether a key holds a value
func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	result, err := s.client.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check existence in storage: %w", err)
	}
	return result > 0, nil
}
