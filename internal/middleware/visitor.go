// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"skillsite/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// VisitorKey is the context key for the visitor's session data.
	VisitorKey contextKey = "visitor"

	// requestIDKey is the context key for the per-request identifier.
	requestIDKey contextKey = "request_id"

	// csrfTokenKey is the context key for the request's CSRF token.
	csrfTokenKey contextKey = "csrf_token"
)

// SessionLoader loads or creates the visitor session for a request.
// *session.Store satisfies it.
type SessionLoader interface {
	Load(ctx context.Context, w http.ResponseWriter, r *http.Request) (*session.Data, error)
}

// LoadVisitor attaches the visitor's session to the request context,
// creating one on first visit. When Valkey is unreachable the request
// still goes through without a session; handlers that need one answer
// 503 and the rest of the page renders from defaults.
func LoadVisitor(loader SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := loader.Load(r.Context(), w, r)
			if err != nil {
				slog.Warn("visitor session unavailable",
					"error", err,
					"request_id", RequestIDFromCtx(r.Context()),
				)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), VisitorKey, data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VisitorFromCtx extracts the visitor session from the request context.
// Returns nil if no session could be loaded.
func VisitorFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(VisitorKey).(*session.Data)
	return data
}
