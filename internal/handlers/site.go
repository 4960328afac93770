// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"skillsite/internal/ai"
	"skillsite/internal/cache"
	"skillsite/internal/carousel"
	"skillsite/internal/contact"
	"skillsite/internal/features"
	"skillsite/internal/middleware"
	"skillsite/internal/models"
	"skillsite/internal/prefs"
	"skillsite/internal/render"
	"skillsite/internal/session"
)

// Catalog is the read side of the catalog store.
type Catalog interface {
	All(ctx context.Context) ([]models.Item, error)
	FindBySlug(ctx context.Context, slug string) (*models.Item, error)
}

// FragmentCache stores rendered HTML shared by all visitors.
type FragmentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
}

// Hero reports the carousel slide on screen.
type Hero interface {
	Current() (int, carousel.Slide)
	Len() int
	Period() time.Duration
}

// SessionUpdater writes visitor state back to the session store.
type SessionUpdater interface {
	Update(ctx context.Context, data *session.Data, fn func(*session.Data)) error
}

// Site groups the handlers of the single-page site: the page itself, the
// hero carousel, the theme toggle, modals and blog articles. Rendered
// catalog sections and info modals go through the L2 fragment cache.
type Site struct {
	renderer *render.Renderer
	catalog  Catalog
	cache    FragmentCache
	hero     Hero
	sessions SessionUpdater
	info     models.ContactInfo
	secure   bool
}

// NewSite creates the site handler group. cache and sessions may be nil.
func NewSite(renderer *render.Renderer, catalog Catalog, cache FragmentCache, hero Hero, sessions SessionUpdater, info models.ContactInfo, secure bool) *Site {
	return &Site{
		renderer: renderer,
		catalog:  catalog,
		cache:    cache,
		hero:     hero,
		sessions: sessions,
		info:     info,
		secure:   secure,
	}
}

// Home renders the whole page. The query parameters ?modal=consultation
// and ?info={slug} open a modal without JavaScript.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	visitor := middleware.VisitorFromCtx(ctx)

	data := &render.PageData{
		Hero:     s.heroView(),
		Sections: s.sections(ctx),
		Features: featureViews(visitor),
		Contact:  render.ContactView{Info: s.info},
	}
	if visitor != nil {
		data.Contact.Form = visitor.Contact
	}

	switch {
	case r.URL.Query().Get("modal") == string(models.ModalConsultation):
		data.Modal = models.ConsultationModal()
	case r.URL.Query().Get("info") != "":
		if m, ok := s.infoModal(ctx, r.URL.Query().Get("info")); ok {
			data.Modal = m
		}
	}

	s.renderer.Page(w, r, "home", data)

	// The contact notice is shown once.
	if visitor != nil && visitor.Contact.Notice != "" && s.sessions != nil {
		err := s.sessions.Update(ctx, visitor, func(d *session.Data) {
			d.Contact.Notice = ""
			d.Contact.NoticeType = ""
		})
		if err != nil {
			slog.Warn("clear contact notice failed", "error", err)
		}
	}
}

// HeroFragment returns the current slide. The fragment re-arms its own
// HTMX polling trigger.
func (s *Site) HeroFragment(w http.ResponseWriter, r *http.Request) {
	s.renderer.Fragment(w, r, "hero", s.heroView())
}

// ThemeToggle flips the visitor's theme. HTMX callers get the new toggle
// button plus a themeChanged event that updates the <html> class; plain
// form posts are redirected back to the page.
func (s *Site) ThemeToggle(w http.ResponseWriter, r *http.Request) {
	var marker prefs.ClassMarker
	store := prefs.NewStore(prefs.NewCookieKV(w, r, s.secure), &marker)
	theme := store.Toggle()

	slog.Debug("theme toggled", "theme", theme, "request_id", middleware.RequestIDFromCtx(r.Context()))

	if !render.IsHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.Header().Set("HX-Trigger", `{"themeChanged":{"theme":"`+string(theme)+`"}}`)
	s.renderer.Fragment(w, r, "theme_toggle", &render.PageData{Theme: theme, ThemeClass: marker.Class})
}

// ModalInfo opens the info modal of a catalog item.
func (s *Site) ModalInfo(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !render.IsHTMX(r) {
		http.Redirect(w, r, "/?info="+url.QueryEscape(slug), http.StatusSeeOther)
		return
	}

	ctx := r.Context()
	key := cache.ModalKey(slug)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			writeHTML(w, cached)
			return
		}
	}

	m, ok := s.infoModal(ctx, slug)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	out, err := s.renderer.RenderFragment("modal", m)
	if err != nil {
		slog.Error("render modal failed", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, out)
	}
	writeHTML(w, out)
}

// ModalConsultation opens the consultation booking modal.
func (s *Site) ModalConsultation(w http.ResponseWriter, r *http.Request) {
	if !render.IsHTMX(r) {
		http.Redirect(w, r, "/?modal=consultation", http.StatusSeeOther)
		return
	}
	s.renderer.Fragment(w, r, "modal", models.ConsultationModal())
}

// ModalClose empties the modal container.
func (s *Site) ModalClose(w http.ResponseWriter, r *http.Request) {
	if !render.IsHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.renderer.Fragment(w, r, "modal", models.Modal{})
}

// Article renders a blog post by its public path /blog/{name}.
func (s *Site) Article(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.All(r.Context())
	if err != nil {
		slog.Error("load catalog failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	path := "/blog/" + chi.URLParam(r, "name")
	for i := range items {
		it := &items[i]
		if it.Section == models.SectionBlog && it.URL == path {
			s.renderer.Page(w, r, "article", &render.PageData{
				Title: it.Title,
				Data:  map[string]any{"Article": it},
			})
			return
		}
	}
	s.NotFound(w, r)
}

// NotFound renders the 404 page.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	s.renderer.PageStatus(w, r, http.StatusNotFound, "not_found", &render.PageData{Title: "Not Found"})
}

func (s *Site) heroView() render.HeroView {
	idx, slide := s.hero.Current()
	return render.HeroView{Index: idx, Count: s.hero.Len(), Slide: slide, Period: s.hero.Period()}
}

// sections returns the rendered catalog block, from the L2 cache when
// possible. A catalog failure degrades to an empty block.
func (s *Site) sections(ctx context.Context) template.HTML {
	key := cache.SectionsKey()
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return template.HTML(cached) //nolint:gosec // rendered by our own templates
		}
	}

	items, err := s.catalog.All(ctx)
	if err != nil {
		slog.Error("load catalog failed", "error", err)
		return ""
	}

	out, err := s.renderer.RenderFragment("sections", render.SectionsData{Catalog: models.Group(items)})
	if err != nil {
		slog.Error("render sections failed", "error", err)
		return ""
	}

	// An empty catalog is not cached so the first seed shows up at once.
	if s.cache != nil && len(items) > 0 {
		s.cache.Set(ctx, key, out)
	}
	return template.HTML(out) //nolint:gosec // rendered by our own templates
}

func (s *Site) infoModal(ctx context.Context, slug string) (models.Modal, bool) {
	it, err := s.catalog.FindBySlug(ctx, slug)
	if err != nil {
		slog.Error("find catalog item failed", "slug", slug, "error", err)
		return models.Modal{}, false
	}
	if it == nil || !it.HasModal() {
		return models.Modal{}, false
	}
	return models.InfoModal(it), true
}

// featureViews lists every feature with the visitor's state, or empty
// states when there is no session.
func featureViews(visitor *session.Data) []render.FeatureView {
	var board features.Board
	if visitor != nil {
		board = visitor.Features
	}
	views := make([]render.FeatureView, 0, len(ai.Kinds()))
	for _, k := range ai.Kinds() {
		views = append(views, render.FeatureView{Meta: features.MetaFor(k), State: *board.Get(k)})
	}
	return views
}

// contactView builds the contact block for the given form state.
func contactView(r *http.Request, form contact.FormState, info models.ContactInfo) render.ContactView {
	return render.ContactView{Form: form, Info: info, CSRFToken: middleware.CSRFTokenFromCtx(r.Context())}
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
