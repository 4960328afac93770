// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Generator dispatches a feature request to the provider using the prompt
// template bound to its kind. It never caches, retries, or throttles.
type Generator struct {
	provider Provider
}

// NewGenerator wraps a provider. A nil provider is allowed; every valid
// request then fails with ErrHTTPFailure so the page keeps working.
func NewGenerator(p Provider) *Generator {
	return &Generator{provider: p}
}

// CheckInput reports ErrEmptyInput for blank text and ErrInputTooLong for
// text over MaxInputRunes.
func CheckInput(userText string) error {
	if strings.TrimSpace(userText) == "" {
		return ErrEmptyInput
	}
	if utf8.RuneCountInString(userText) > MaxInputRunes {
		return ErrInputTooLong
	}
	return nil
}

// Generate validates userText, renders the prompt for kind, and performs
// exactly one provider call. The returned text is passed through unchanged.
func (g *Generator) Generate(ctx context.Context, kind Kind, userText string) (string, error) {
	if err := CheckInput(userText); err != nil {
		return "", err
	}

	prompt, err := Prompt(kind, userText)
	if err != nil {
		return "", err
	}

	if g.provider == nil {
		return "", fmt.Errorf("%w: no provider configured", ErrHTTPFailure)
	}

	text, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrHTTPFailure) || errors.Is(err, ErrMalformedResponse) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s: %w", ErrHTTPFailure, g.provider.Name(), err)
	}
	return text, nil
}

// ProviderName reports which backend serves requests, or "none".
func (g *Generator) ProviderName() string {
	if g.provider == nil {
		return "none"
	}
	return g.provider.Name()
}
