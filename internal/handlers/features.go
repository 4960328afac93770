// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skillsite/internal/ai"
	"skillsite/internal/features"
	"skillsite/internal/middleware"
	"skillsite/internal/render"
	"skillsite/internal/session"
)

// maxFormBytes caps the body of every form post.
const maxFormBytes = 64 << 10

// FeatureRunner runs one generator request. *features.Runner satisfies it.
type FeatureRunner interface {
	Run(ctx context.Context, owner string, kind ai.Kind, input string, commit features.Commit) (features.State, error)
}

// Features serves the three AI generator forms. Each result is stored in
// the visitor's session so a reload or a non-HTMX post shows it again.
type Features struct {
	renderer *render.Renderer
	runner   FeatureRunner
	sessions SessionUpdater
}

// NewFeatures creates the generator handler group.
func NewFeatures(renderer *render.Renderer, runner FeatureRunner, sessions SessionUpdater) *Features {
	return &Features{renderer: renderer, runner: runner, sessions: sessions}
}

// Generate handles POST /ai/{kind}.
func (f *Features) Generate(w http.ResponseWriter, r *http.Request) {
	kind, ok := ai.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	ctx := r.Context()
	visitor := middleware.VisitorFromCtx(ctx)
	if visitor == nil {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	input := r.PostForm.Get("input")

	// The session write happens inside the run, while this visitor's
	// request for kind is still the only one admitted.
	save := func(st features.State) {
		err := f.sessions.Update(ctx, visitor, func(d *session.Data) {
			*d.Features.Get(kind) = st
		})
		if err != nil {
			slog.Warn("save feature state failed", "kind", kind, "error", err)
		}
	}

	state, err := f.runner.Run(ctx, visitor.VisitorID.String(), kind, input, save)
	switch {
	case errors.Is(err, features.ErrBusy):
		// The outstanding request owns the stored state; only answer.
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		slog.Debug("feature request abandoned", "kind", kind, "request_id", middleware.RequestIDFromCtx(ctx))
		return
	case err != nil:
		slog.Error("feature run failed", "kind", kind, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	f.respond(w, r, kind, state)
}

// respond sends the feature panel to HTMX, or redirects back to it.
func (f *Features) respond(w http.ResponseWriter, r *http.Request, kind ai.Kind, state features.State) {
	view := render.FeatureView{
		Meta:      features.MetaFor(kind),
		State:     state,
		CSRFToken: middleware.CSRFTokenFromCtx(r.Context()),
	}
	if !render.IsHTMX(r) {
		http.Redirect(w, r, "/#"+view.ID(), http.StatusSeeOther)
		return
	}
	f.renderer.Fragment(w, r, "feature", view)
}
