// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package contact posts the site's contact form to a hosted
// form-processing endpoint.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"skillsite/internal/httpclient"
)

// Visitor-facing outcomes.
const (
	SuccessMessage      = "Thank you for your message! We will get back to you soon."
	GenericMessage      = "Oops! There was a problem submitting your form."
	ConnectivityMessage = "Failed to submit form. Please check your connection."
)

const defaultTimeout = 15 * time.Second

// ErrHTTPFailure is wrapped by every SubmitError.
var ErrHTTPFailure = errors.New("contact: http failure")

// Submission is one filled-in contact form. Subject is optional.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// SubmitError carries the message to show the visitor. Status is zero for
// transport failures.
type SubmitError struct {
	Message string
	Status  int
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("contact: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("contact: %s (status %d)", e.Message, e.Status)
}

// Unwrap lets errors.Is match ErrHTTPFailure and the underlying cause.
func (e *SubmitError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrHTTPFailure, e.Err}
	}
	return []error{ErrHTTPFailure}
}

// Client submits forms to a single endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for endpoint. A non-positive timeout uses the
// default.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http:     httpclient.New(timeout, httpclient.WithRequestLogging("form")),
	}
}

type errorBody struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Submit sends s as multipart/form-data in a single POST. There is no retry.
func (c *Client) Submit(ctx context.Context, s Submission) error {
	if c.endpoint == "" {
		return &SubmitError{Message: GenericMessage, Err: errors.New("form endpoint not configured")}
	}

	body, contentType, err := encode(s)
	if err != nil {
		return &SubmitError{Message: GenericMessage, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return &SubmitError{Message: GenericMessage, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &SubmitError{Message: ConnectivityMessage, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	msg := GenericMessage
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil && len(eb.Errors) > 0 {
		parts := make([]string, 0, len(eb.Errors))
		for _, e := range eb.Errors {
			parts = append(parts, e.Message)
		}
		msg = strings.Join(parts, ", ")
	}
	return &SubmitError{Message: msg, Status: resp.StatusCode}
}

func encode(s Submission) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{{"name", s.Name}, {"email", s.Email}}
	if s.Subject != "" {
		fields = append(fields, [2]string{"subject", s.Subject})
	}
	fields = append(fields, [2]string{"message", s.Message})

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// MessageOf returns the visitor-facing text for an error from Submit.
func MessageOf(err error) string {
	if err == nil {
		return SuccessMessage
	}
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Message
	}
	return GenericMessage
}
