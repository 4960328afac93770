// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package retry wraps retry-go for the startup connections to Postgres and
// Valkey. Request-path calls (generator, form endpoint) never retry.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultAttempts = 5
	defaultDelay    = time.Second
	defaultMaxDelay = 10 * time.Second
)

// Config controls how often a startup dependency is retried.
type Config struct {
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{Attempts: defaultAttempts, Delay: defaultDelay, MaxDelay: defaultMaxDelay}
}

// Override replaces the attempts and delay with any non-zero value given.
// MaxDelay grows with the delay so backoff keeps its shape.
func (c Config) Override(attempts uint, delay time.Duration) Config {
	if attempts > 0 {
		c.Attempts = attempts
	}
	if delay > 0 {
		c.Delay = delay
		c.MaxDelay = max(c.MaxDelay, 10*delay)
	}
	return c
}

// Do runs fn until it succeeds, attempts are exhausted, or ctx is done.
// name labels the log lines of failed attempts.
func Do(ctx context.Context, name string, cfg Config, fn func() error) error {
	if cfg.Attempts == 0 {
		cfg.Attempts = 1
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = defaultMaxDelay
	}
	return retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(cfg.Attempts),
		retry.Delay(cfg.Delay),
		retry.MaxDelay(cfg.MaxDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("connection attempt failed", "target", name, "attempt", n+1, "error", err)
		}),
	)
}
