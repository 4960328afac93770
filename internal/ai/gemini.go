// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"skillsite/internal/httpclient"
)

const (
	// DefaultGeminiBaseURL is the public Generative Language API host.
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultGeminiModel is the model the site features were tuned against.
	DefaultGeminiModel = "gemini-2.0-flash"

	defaultGeminiTimeout = 60 * time.Second

	// maxErrorBody caps how much of a failed response is kept for logging.
	maxErrorBody = 4 << 10
)

// GeminiProvider implements Provider using the Google Gemini REST API
// (POST /v1beta/models/{model}:generateContent).
type GeminiProvider struct {
	config ProviderConfig
	client *http.Client
}

// NewGemini creates a Gemini provider, filling in defaults for the base
// URL, model, and request timeout.
func NewGemini(cfg ProviderConfig) *GeminiProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGeminiBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultGeminiTimeout
	}
	return &GeminiProvider{
		config: cfg,
		// generateContent answers only once the text is complete, so the
		// header wait is bounded by the same budget as the whole call.
		client: httpclient.New(cfg.Timeout,
			httpclient.WithResponseHeaderTimeout(cfg.Timeout),
			httpclient.WithRequestLogging("gemini"),
		),
	}
}

func (p *GeminiProvider) Name() string { return "gemini" }

// Generate sends the prompt as the only user turn of a generateContent call.
// The API key travels as the "key" query parameter.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.config.APIKey == "" {
		return "", fmt.Errorf("%w: gemini api key not configured", ErrHTTPFailure)
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: &prompt}}},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini marshal: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		p.config.BaseURL, url.PathEscape(p.config.Model), url.QueryEscape(p.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: gemini request: %w", ErrHTTPFailure, stripURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: gemini http: %w", ErrHTTPFailure, stripURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w: gemini API error (status %d): %s", ErrHTTPFailure, resp.StatusCode, snippet)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: gemini read body: %w", ErrHTTPFailure, err)
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: gemini unmarshal: %w", ErrMalformedResponse, err)
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("%w: gemini: no candidates returned", ErrMalformedResponse)
	}

	content := result.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0].Text == nil {
		return "", fmt.Errorf("%w: gemini: no text in first candidate", ErrMalformedResponse)
	}

	return *content.Parts[0].Text, nil
}

// stripURL unwraps *url.Error so the request URL, which carries the API
// key, never ends up in logs.
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

// --- Gemini API types ---

// geminiPart keeps Text as a pointer so a part without a text field can be
// told apart from one whose text is empty.
type geminiPart struct {
	Text *string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}
