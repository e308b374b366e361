package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig describes the tenant cache connection. Only Addr is required.
type RedisConfig struct {
	Addr string

	// OpTimeout bounds dial, read and write. Keep it well under the tenant
	// lookup timeout.
	OpTimeout   time.Duration
	PoolSize    int
	PingTimeout time.Duration
}

const (
	defaultRedisOpTimeout   = 500 * time.Millisecond
	defaultRedisPoolSize    = 10
	defaultRedisPingTimeout = 2 * time.Second
)

func (c RedisConfig) withDefaults() RedisConfig {
	out := c
	if out.OpTimeout <= 0 {
		out.OpTimeout = defaultRedisOpTimeout
	}
	if out.PoolSize <= 0 {
		out.PoolSize = defaultRedisPoolSize
	}
	if out.PingTimeout <= 0 {
		out.PingTimeout = defaultRedisPingTimeout
	}
	return out
}

// OpenRedis returns a client that has answered PING.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	cfg = cfg.withDefaults()

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DialTimeout:  cfg.OpTimeout,
		ReadTimeout:  cfg.OpTimeout,
		WriteTimeout: cfg.OpTimeout,
		PoolSize:     cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}
