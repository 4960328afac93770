// Package cache provides Valkey (Redis-compatible) client initialization
// and the rendered-fragment cache for the site's catalog sections.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"skillsite/internal/retry"
)

// ConnectValkey creates a Valkey client and verifies the connection with a
// ping, retried per rc.
func ConnectValkey(ctx context.Context, addr, password string, rc retry.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	err := retry.Do(ctx, "valkey", rc, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return client.Ping(pingCtx).Err()
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}
