// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai talks to the generative-text endpoint behind the site's AI
// features (soft skill tips, personal branding statement, LinkedIn post).
// A Provider performs the HTTP exchange; the Generator binds a feature kind
// to its prompt template and classifies every failure into an error kind
// that handlers turn into a feature-scoped message.
package ai

import (
	"context"
	"errors"
	"time"
)

// Provider defines the interface that generative-text backends implement.
// Each provider handles its own HTTP communication and response parsing.
type Provider interface {
	// Generate sends a single-turn prompt and returns the generated text
	// verbatim. Failures wrap ErrHTTPFailure or ErrMalformedResponse.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the provider identifier (e.g., "gemini").
	Name() string
}

// ProviderConfig holds the credentials and settings for a provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// MaxInputRunes caps the user text. Longer input is rejected locally.
const MaxInputRunes = 4_000

// Sentinel errors for the failure kinds. Every error returned by a
// Generator wraps exactly one of them.
var (
	// ErrEmptyInput means the user text was blank; no request was sent.
	ErrEmptyInput = errors.New("ai: empty input")

	// ErrInputTooLong means the user text exceeded MaxInputRunes; no
	// request was sent.
	ErrInputTooLong = errors.New("ai: input too long")

	// ErrHTTPFailure covers non-2xx responses and transport errors.
	ErrHTTPFailure = errors.New("ai: http failure")

	// ErrMalformedResponse means a 2xx response carried no usable text.
	ErrMalformedResponse = errors.New("ai: malformed response")
)

// ErrorKind classifies a generation failure.
type ErrorKind string

const (
	ErrorKindNone              ErrorKind = ""
	ErrorKindEmptyInput        ErrorKind = "empty_input"
	ErrorKindInputTooLong      ErrorKind = "input_too_long"
	ErrorKindHTTPFailure       ErrorKind = "http_failure"
	ErrorKindMalformedResponse ErrorKind = "malformed_response"
)

// Classify maps an error returned by Generate to its ErrorKind. Errors that
// wrap none of the sentinels are treated as HTTP failures, since anything
// else escaping a provider is a transport problem.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrEmptyInput):
		return ErrorKindEmptyInput
	case errors.Is(err, ErrInputTooLong):
		return ErrorKindInputTooLong
	case errors.Is(err, ErrMalformedResponse):
		return ErrorKindMalformedResponse
	default:
		return ErrorKindHTTPFailure
	}
}
