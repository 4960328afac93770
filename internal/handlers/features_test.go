// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"skillsite/internal/ai"
	"skillsite/internal/features"
)

func TestGenerateSuccess(t *testing.T) {
	env := newTestEnv(t, true)
	env.runner.state = features.State{Input: "Leadership", Output: "1. Lead\n2. Listen", Status: features.StatusIdle}

	rr := env.do(http.MethodPost, "/ai/tips", url.Values{"input": {"Leadership"}}, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	if env.runner.calls != 1 || env.runner.input != "Leadership" {
		t.Errorf("runner: calls=%d input=%q", env.runner.calls, env.runner.input)
	}
	if got := env.visitor.Features.Tips.Output; got != "1. Lead\n2. Listen" {
		t.Errorf("stored output: got %q", got)
	}
	if env.visitor.Features.Branding != (features.State{}) || env.visitor.Features.Post != (features.State{}) {
		t.Error("other features must not change")
	}

	body := rr.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("htmx response should be a fragment")
	}
	for _, want := range []string{`id="feature-tips"`, "<li>1. Lead</li>", "<li>2. Listen</li>"} {
		if !strings.Contains(body, want) {
			t.Errorf("fragment should contain %q", want)
		}
	}
}

func TestGenerateStoresFailureMessage(t *testing.T) {
	env := newTestEnv(t, true)
	msg := features.MessagesFor(ai.KindPost).HTTP
	env.runner.state = features.State{Input: "x", Err: msg, ErrKind: ai.ErrorKindHTTPFailure}

	rr := env.do(http.MethodPost, "/ai/post", url.Values{"input": {"x"}}, true)

	if env.visitor.Features.Post.Err != msg {
		t.Errorf("stored error: got %q, want %q", env.visitor.Features.Post.Err, msg)
	}
	if !strings.Contains(rr.Body.String(), "Failed to fetch LinkedIn post.") {
		t.Error("fragment should show the error message")
	}
}

func TestGenerateRedirectsWithoutHTMX(t *testing.T) {
	env := newTestEnv(t, true)
	env.runner.state = features.State{Input: "x", Output: "done"}

	rr := env.do(http.MethodPost, "/ai/branding", url.Values{"input": {"x"}}, false)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/#feature-branding" {
		t.Errorf("Location: got %q", loc)
	}
	if env.visitor.Features.Branding.Output != "done" {
		t.Error("result should be stored for the redirected page view")
	}
}

func TestGenerateBusyDoesNotPersist(t *testing.T) {
	env := newTestEnv(t, true)
	env.visitor.Features.Tips = features.State{Input: "old", Output: "previous"}
	env.runner.state = features.State{Input: "new", Err: features.BusyMessage}
	env.runner.err = features.ErrBusy

	rr := env.do(http.MethodPost, "/ai/tips", url.Values{"input": {"new"}}, true)

	if env.sessions.updates != 0 {
		t.Errorf("busy request must not write the session, got %d updates", env.sessions.updates)
	}
	if env.visitor.Features.Tips.Output != "previous" {
		t.Error("stored state should be untouched")
	}
	if !strings.Contains(rr.Body.String(), features.BusyMessage) {
		t.Error("response should tell the visitor a request is in progress")
	}
}

func TestGenerateCanceledIsDiscarded(t *testing.T) {
	env := newTestEnv(t, true)
	env.runner.state = features.State{Input: "x", Output: "late"}
	env.runner.err = context.Canceled

	rr := env.do(http.MethodPost, "/ai/tips", url.Values{"input": {"x"}}, true)

	if env.sessions.updates != 0 {
		t.Error("canceled request must not write the session")
	}
	if rr.Body.Len() != 0 {
		t.Errorf("canceled request should write nothing, got %q", rr.Body.String())
	}
}

func TestGenerateErrors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		env := newTestEnv(t, true)
		rr := env.do(http.MethodPost, "/ai/poem", url.Values{"input": {"x"}}, true)
		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
	})

	t.Run("no session", func(t *testing.T) {
		env := newTestEnv(t, false)
		rr := env.do(http.MethodPost, "/ai/tips", url.Values{"input": {"x"}}, true)
		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("status: got %d, want 503", rr.Code)
		}
		if env.runner.calls != 0 {
			t.Error("runner should not run without a session")
		}
	})

	t.Run("session write failure still answers", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.sessions.err = errBoom
		env.runner.state = features.State{Input: "x", Output: "ok"}
		rr := env.do(http.MethodPost, "/ai/tips", url.Values{"input": {"x"}}, true)
		if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "ok") {
			t.Errorf("got %d %q", rr.Code, rr.Body.String())
		}
	})
}

// TestGenerateWithRealRunner runs the handler against features.Runner and
// a stub generator, covering the blank-input path end to end.
func TestGenerateWithRealRunner(t *testing.T) {
	env := newTestEnv(t, true)
	gen := &stubGenerator{}
	runner := features.NewRunner(gen, nil)

	rn := mustRenderer(t)
	h := NewFeatures(rn, runner, env.sessions)
	env.router.Post("/real/{kind}", h.Generate)

	rr := env.do(http.MethodPost, "/real/tips", url.Values{"input": {"   "}}, true)

	if gen.calls != 0 {
		t.Error("blank input must not reach the generator")
	}
	want := features.MessagesFor(ai.KindTips).Empty
	if env.visitor.Features.Tips.Err != want {
		t.Errorf("stored error: got %q, want %q", env.visitor.Features.Tips.Err, want)
	}
	if !strings.Contains(rr.Body.String(), want) {
		t.Error("fragment should show the empty-input message")
	}
}

type stubGenerator struct{ calls int }

func (g *stubGenerator) Generate(ctx context.Context, kind ai.Kind, text string) (string, error) {
	g.calls++
	return "generated", nil
}

func TestGenerateTooLongIsClassified(t *testing.T) {
	env := newTestEnv(t, true)
	gen := &stubGenerator{}
	h := NewFeatures(mustRenderer(t), features.NewRunner(gen, nil), env.sessions)
	env.router.Post("/real/{kind}", h.Generate)

	rr := env.do(http.MethodPost, "/real/branding", url.Values{"input": {strings.Repeat("a", ai.MaxInputRunes+1)}}, true)

	if gen.calls != 0 {
		t.Error("oversized input must not reach the generator")
	}
	stored := env.visitor.Features.Branding
	if stored.ErrKind != ai.ErrorKindInputTooLong {
		t.Errorf("stored kind: got %q, want %q", stored.ErrKind, ai.ErrorKindInputTooLong)
	}
	if stored.Err != features.MessagesFor(ai.KindBranding).TooLong {
		t.Errorf("stored error: got %q", stored.Err)
	}
	if !strings.Contains(rr.Body.String(), "too long") {
		t.Error("response should explain the length limit")
	}
}

// TestGenerateSavesBeforeRelease checks that the session write for a run
// happens while its in-flight key is held, so a second trigger cannot
// slip in between the result and its persistence.
func TestGenerateSavesBeforeRelease(t *testing.T) {
	env := newTestEnv(t, true)
	guard := features.NewGuard()
	h := NewFeatures(mustRenderer(t), features.NewRunner(&stubGenerator{}, guard), env.sessions)
	env.router.Post("/real/{kind}", h.Generate)

	key := env.visitor.VisitorID.String() + ":" + string(ai.KindTips)
	var held bool
	env.sessions.onUpdate = func() { held = guard.InFlight(key) }

	rr := env.do(http.MethodPost, "/real/tips", url.Values{"input": {"Empathy"}}, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if env.sessions.updates != 1 {
		t.Fatalf("updates: got %d, want 1", env.sessions.updates)
	}
	if !held {
		t.Error("session should be written while the request holds its key")
	}
	if guard.InFlight(key) {
		t.Error("key should be released once the handler returns")
	}
	if env.visitor.Features.Tips.Output != "generated" {
		t.Errorf("stored output: got %q", env.visitor.Features.Tips.Output)
	}
}
