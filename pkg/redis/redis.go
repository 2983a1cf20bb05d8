package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"medroster/backend/config"
)

// Client wraps the Redis connection.
// Used for the export cache and request rate limiting; callers must tolerate
// a nil *Client and degrade to uncached / unlimited behavior.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── export cache ──

const exportKeyPrefix = "export:roster:"

// GetExport returns the cached spreadsheet bytes for a roster, or nil on miss.
func (c *Client) GetExport(ctx context.Context, rosterID uint) ([]byte, error) {
	data, err := c.rdb.Get(ctx, fmt.Sprintf("%s%d", exportKeyPrefix, rosterID)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SetExport caches the spreadsheet bytes for a roster.
func (c *Client) SetExport(ctx context.Context, rosterID uint, data []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, fmt.Sprintf("%s%d", exportKeyPrefix, rosterID), data, ttl).Err()
}

// InvalidateExport drops the cached spreadsheet for a roster.
// Called after any assignment mutation.
func (c *Client) InvalidateExport(ctx context.Context, rosterID uint) error {
	return c.rdb.Del(ctx, fmt.Sprintf("%s%d", exportKeyPrefix, rosterID)).Err()
}

// ── rate limiting ──

// CheckRateLimit counts requests for key within the window and reports
// whether this request is allowed.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
