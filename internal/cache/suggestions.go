package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"adaptrack/internal/api/dto"

	"github.com/redis/go-redis/v9"
)

// SuggestionCache keeps recent title-suggestion results in redis so the hot
// autocomplete path skips the database. Failures are logged and treated as
// misses; the service falls through to the store.
type SuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewSuggestionCache(addr, password string, ttl time.Duration, logger *slog.Logger) (*SuggestionCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SuggestionCache{client: rdb, ttl: ttl, logger: logger}, nil
}

func key(query string) string {
	return fmt.Sprintf("suggest:%s", query)
}

func (c *SuggestionCache) Get(ctx context.Context, query string) ([]dto.SuggestionResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key(query)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("suggestion cache read failed", "error", err)
		return nil, false
	}
	var results []dto.SuggestionResponse
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *SuggestionCache) Set(ctx context.Context, query string, results []dto.SuggestionResponse) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(query), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("suggestion cache write failed", "error", err)
	}
}

func (c *SuggestionCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
