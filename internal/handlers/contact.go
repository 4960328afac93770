// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"skillsite/internal/contact"
	"skillsite/internal/features"
	"skillsite/internal/middleware"
	"skillsite/internal/models"
	"skillsite/internal/render"
	"skillsite/internal/session"
)

// ContactSubmitter forwards a contact form. *contact.Client satisfies it.
type ContactSubmitter interface {
	Submit(ctx context.Context, s contact.Submission) error
}

// Contact serves the contact form and relays it to the form endpoint.
type Contact struct {
	renderer *render.Renderer
	client   ContactSubmitter
	sessions SessionUpdater
	guard    *features.Guard
	info     models.ContactInfo
}

// NewContact creates the contact handler group. A nil guard gets a fresh one.
func NewContact(renderer *render.Renderer, client ContactSubmitter, sessions SessionUpdater, guard *features.Guard, info models.ContactInfo) *Contact {
	if guard == nil {
		guard = features.NewGuard()
	}
	return &Contact{renderer: renderer, client: client, sessions: sessions, guard: guard, info: info}
}

// Submit handles POST /contact.
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
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

	// Fields are forwarded exactly as typed; trimming is only for the checks.
	sub := contact.Submission{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}
	form := contact.FormState{Fields: sub}

	if msg := validateContact(trimmed(sub)); msg != "" {
		form.Failed(msg)
	} else {
		release, ok := c.guard.Acquire("contact:" + visitor.VisitorID.String())
		if !ok {
			form.Failed(features.BusyMessage)
			c.respond(w, r, form)
			return
		}
		err := c.client.Submit(ctx, sub)
		release()

		if ctx.Err() != nil {
			slog.Debug("contact submission abandoned", "request_id", middleware.RequestIDFromCtx(ctx))
			return
		}
		if err != nil {
			slog.Warn("contact submission failed", "error", err, "request_id", middleware.RequestIDFromCtx(ctx))
			form.Failed(contact.MessageOf(err))
		} else {
			slog.Info("contact submission sent", "request_id", middleware.RequestIDFromCtx(ctx))
			form.Succeeded()
		}
	}

	// HTMX callers see the notice in the response; only a redirect needs
	// it carried over to the next page view.
	stored := form
	if render.IsHTMX(r) {
		stored.Notice, stored.NoticeType = "", ""
	}
	err := c.sessions.Update(ctx, visitor, func(d *session.Data) {
		d.Contact = stored
	})
	if err != nil {
		slog.Warn("save contact state failed", "error", err)
	}

	c.respond(w, r, form)
}

func (c *Contact) respond(w http.ResponseWriter, r *http.Request, form contact.FormState) {
	if !render.IsHTMX(r) {
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}
	c.renderer.Fragment(w, r, "contact_form", contactView(r, form, c.info))
}

func trimmed(s contact.Submission) contact.Submission {
	return contact.Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}
