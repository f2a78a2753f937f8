package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/freddytc/checkout-agent/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists the checkout state in Redis, for agents that must share
// or survive beyond local disk. Keys match the file/memory namespace.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) SaveSession(ctx context.Context, sess *domain.CheckoutSession) error {
	raw, err := encodeSession(sess)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, KeySession, raw, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", KeySession, err)
	}
	return nil
}

func (s *RedisStore) LoadSession(ctx context.Context) (*domain.CheckoutSession, error) {
	raw, err := s.client.Get(ctx, KeySession).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", KeySession, err)
	}
	return decodeSession(raw)
}

func (s *RedisStore) SaveWindow(ctx context.Context, w domain.ExpirationWindow) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, KeyExpiration, encodeExpiration(w), 0)
	pipe.Set(ctx, KeyBatchID, w.BatchID, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set expiration window: %w", err)
	}
	return nil
}

func (s *RedisStore) LoadWindow(ctx context.Context) (*domain.ExpirationWindow, error) {
	raw, err := s.client.Get(ctx, KeyExpiration).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", KeyExpiration, err)
	}

	batchID, err := s.client.Get(ctx, KeyBatchID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get %s: %w", KeyBatchID, err)
	}
	return decodeExpiration(raw, batchID)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, KeySession, KeyExpiration, KeyBatchID).Err(); err != nil {
		return fmt.Errorf("clear checkout keys: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
