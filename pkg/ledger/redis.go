package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the list key entries are pushed to.
const DefaultRedisKey = "ttrpg:saved_names"

var redisRetryDelay = 2 * time.Second

// RedisRepository stores entries as JSON values in a Redis list.
type RedisRepository struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

var _ Repository = (*RedisRepository)(nil)

// NewRedisRepository connects to redisURL (redis://host:port/db) and uses
// key for the entry list. It pings up to attempts times before giving up.
func NewRedisRepository(ctx context.Context, redisURL, key string, attempts int, logger *slog.Logger) (*RedisRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if key == "" {
		key = DefaultRedisKey
	}

	r := &RedisRepository{client: redis.NewClient(opt), key: key, logger: logger}
	if err := r.waitForConnection(ctx, attempts); err != nil {
		_ = r.client.Close()
		return nil, err
	}
	logger.Info("Connected to Redis for saved names", "key", key)
	return r, nil
}

func (r *RedisRepository) waitForConnection(ctx context.Context, attempts int) error {
	attempts = max(attempts, 1)
	var err error
	for i := 0; i < attempts; i++ {
		if err = r.client.Ping(ctx).Err(); err == nil {
			return nil
		}
		r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
		case <-time.After(redisRetryDelay):
		}
	}
	return fmt.Errorf("failed to connect to redis after %d attempts: %w", attempts, err)
}

func (r *RedisRepository) Load(ctx context.Context) ([]Entry, error) {
	values, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		r.logger.Error("Redis LRANGE failed", "key", r.key, "error", err)
		return nil, fmt.Errorf("redis lrange failed: %w", err)
	}

	entries := make([]Entry, 0, len(values))
	for i, v := range values {
		var e Entry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			r.logger.Warn("Skipping unreadable saved name", "key", r.key, "index", i, "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *RedisRepository) Append(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal saved name: %w", err)
	}
	if err := r.client.RPush(ctx, r.key, string(data)).Err(); err != nil {
		r.logger.Error("Redis RPUSH failed", "key", r.key, "error", err)
		return fmt.Errorf("redis rpush failed: %w", err)
	}
	return nil
}

func (r *RedisRepository) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}
