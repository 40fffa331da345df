// Package cache provides a Redis read-through cache for single-entity lookups.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client defines the minimal Redis interface needed for caching
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store reads and writes JSON encoded values under a key prefix.
// Redis failures are logged and treated as misses.
type Store struct {
	client Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewStore creates a store whose keys are prefixed with prefix
func NewStore(client Client, prefix string, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

// Connect opens a Redis client from a redis:// URL and checks the connection
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}

func (s *Store) key(id string) string {
	return s.prefix + ":" + id
}

// Get decodes the cached value for id into dst and reports whether it was found
func (s *Store) Get(ctx context.Context, id string, dst any) bool {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("failed to read cache", zap.String("key", s.key(id)), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("failed to decode cached value", zap.String("key", s.key(id)), zap.Error(err))
		return false
	}
	return true
}

// Set caches value under id
func (s *Store) Set(ctx context.Context, id string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to encode value for cache", zap.String("key", s.key(id)), zap.Error(err))
		return
	}

	if err := s.client.Set(ctx, s.key(id), raw, s.ttl).Err(); err != nil {
		s.logger.Warn("failed to write cache", zap.String("key", s.key(id)), zap.Error(err))
	}
}

// Invalidate drops the cached value for id
func (s *Store) Invalidate(ctx context.Context, id string) {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		s.logger.Warn("failed to invalidate cache", zap.String("key", s.key(id)), zap.Error(err))
	}
}
