// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package httpclient builds the outbound HTTP clients used for the
// generative-text API and the form endpoint.
package httpclient

import (
	"log/slog"
	"net"
	"net/http"
	"time"
)

// TransportFunc decorates a RoundTripper.
type TransportFunc func(http.RoundTripper) http.RoundTripper

type config struct {
	requestTimeout        time.Duration
	dialTimeout           time.Duration
	tlsHandshakeTimeout   time.Duration
	responseHeaderTimeout time.Duration
	idleConnTimeout       time.Duration
	maxIdleConnsPerHost   int
	transports            []TransportFunc
}

// Option configures New.
type Option func(*config)

// WithResponseHeaderTimeout bounds the wait for response headers.
func WithResponseHeaderTimeout(d time.Duration) Option {
	return func(c *config) { c.responseHeaderTimeout = d }
}

// WithTransport adds a RoundTripper decorator. Decorators wrap in the order
// given, so the last one runs first.
func WithTransport(fn TransportFunc) Option {
	return func(c *config) { c.transports = append(c.transports, fn) }
}

// New returns a client whose requests time out after requestTimeout.
func New(requestTimeout time.Duration, opts ...Option) *http.Client {
	cfg := &config{
		requestTimeout:      requestTimeout,
		dialTimeout:         10 * time.Second,
		tlsHandshakeTimeout: 10 * time.Second,
		idleConnTimeout:     90 * time.Second,
		maxIdleConnsPerHost: 10,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	dialer := &net.Dialer{Timeout: cfg.dialTimeout, KeepAlive: 30 * time.Second}

	var rt http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   cfg.tlsHandshakeTimeout,
		ResponseHeaderTimeout: cfg.responseHeaderTimeout,
		IdleConnTimeout:       cfg.idleConnTimeout,
		MaxIdleConnsPerHost:   cfg.maxIdleConnsPerHost,
		ForceAttemptHTTP2:     true,
	}
	for _, fn := range cfg.transports {
		rt = fn(rt)
	}

	return &http.Client{Timeout: cfg.requestTimeout, Transport: rt}
}

type logTransport struct {
	name string
	next http.RoundTripper
}

// RoundTrip logs method, host, path, status and duration at debug level.
// The query string is never logged because it may carry credentials.
func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	attrs := []any{
		"client", t.name,
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		slog.DebugContext(req.Context(), "outbound request failed", append(attrs, "error", err)...)
		return nil, err
	}
	slog.DebugContext(req.Context(), "outbound request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}

// WithRequestLogging logs every outbound request under the given client name.
func WithRequestLogging(name string) Option {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{name: name, next: rt}
	})
}
