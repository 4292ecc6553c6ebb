package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout = 3 * time.Second
	clientName     = "civic-portal"
)

// Config describes the Redis instance holding session mirrors and token
// state.
type Config struct {
	Addr     string
	Password string
	DB       int
	// Timeout bounds dialing, every read and write, and the startup ping.
	Timeout  time.Duration
	PoolSize int
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

func clientOptions(cfg Config) *redis.Options {
	t := cfg.timeout()
	return &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   clientName,
		DialTimeout:  t,
		ReadTimeout:  t,
		WriteTimeout: t,
		PoolSize:     cfg.PoolSize,
	}
}

// Connect opens the client and checks that the server answers.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(clientOptions(cfg))

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s/%d: %w", cfg.Addr, cfg.DB, err)
	}
	return client, nil
}

// Ping returns the readiness check for client.
func Ping(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
