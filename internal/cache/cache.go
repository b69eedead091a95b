package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/haojie/dochub-api/internal/config"
	"github.com/haojie/dochub-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Connect builds the shared redis client and verifies the connection.
// The returned client is passed into the services that need it; no
// package-level singleton is kept.
func Connect(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost + ":" + cfg.RedisPort,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Infow("redis connected", "addr", cfg.RedisHost+":"+cfg.RedisPort, "db", cfg.RedisDB)
	return client, nil
}
