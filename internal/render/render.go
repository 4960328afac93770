// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header, and renders named fragments
// on their own for HTMX swaps and the fragment cache.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"skillsite/internal/carousel"
	"skillsite/internal/contact"
	"skillsite/internal/features"
	"skillsite/internal/markdown"
	"skillsite/internal/middleware"
	"skillsite/internal/models"
	"skillsite/internal/prefs"
)

//go:embed templates/site/*.html
var siteFS embed.FS

const (
	layoutFile   = "base.html"
	partialsFile = "partials.html"
)

// PageData holds all data passed to site templates.
type PageData struct {
	Title      string      // Page title for <title> tag
	CSRFToken  string      // CSRF token for forms and HTMX headers
	Theme      prefs.Theme // Theme in effect for this response
	ThemeClass string      // Class on <html>: "dark" or ""

	Hero     HeroView
	Sections template.HTML // Pre-rendered catalog sections (possibly cached)
	Features []FeatureView
	Contact  ContactView
	Modal    models.Modal

	Data map[string]any // Fragment-specific data
}

// HeroView is the carousel slide currently on screen.
type HeroView struct {
	Index  int
	Count  int
	Slide  carousel.Slide
	Period time.Duration
}

// Dots returns one entry per slide for the position indicator.
func (h HeroView) Dots() []int {
	out := make([]int, h.Count)
	for i := range out {
		out[i] = i
	}
	return out
}

// FeatureView pairs a feature's presentation with its visitor state.
type FeatureView struct {
	features.Meta
	State     features.State
	CSRFToken string
}

// ID is the DOM id of the feature's panel.
func (f FeatureView) ID() string {
	return "feature-" + string(f.Kind)
}

// ContactView is the contact form plus the trainer's contact block.
type ContactView struct {
	Form      contact.FormState
	Info      models.ContactInfo
	CSRFToken string
}

// SectionsData is what the cacheable catalog fragment is rendered from.
// It carries no per-visitor data.
type SectionsData struct {
	Catalog models.Catalog
}

// Items returns the items of one section for ranging in templates.
func (s SectionsData) Items(section string) []models.Item {
	return s.Catalog[models.Section(section)]
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
	partials  *template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem. Each page template is paired with the base layout and the
// shared partials. When devMode is true, pages load TailwindCSS from its
// CDN; when false, they reference the embedded stylesheet.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// isDev returns true when the app runs in development mode.
			"isDev": func() bool {
				return devMode
			},
			"markdown": markdown.Render,
			// interval formats a duration for hx-trigger "every ...".
			"interval": func(d time.Duration) string {
				return fmt.Sprintf("%dms", d.Milliseconds())
			},
			"add": func(a, b int) int { return a + b },
			"year": func() int {
				return time.Now().Year()
			},
		},
	}

	partials, err := template.New(partialsFile).Funcs(r.funcMap).ParseFS(siteFS, "templates/site/"+partialsFile)
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}
	r.partials = partials

	entries, err := fs.ReadDir(siteFS, "templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == layoutFile || name == partialsFile {
			continue
		}

		tmpl, err := template.New(layoutFile).Funcs(r.funcMap).ParseFS(siteFS,
			"templates/site/"+layoutFile,
			"templates/site/"+partialsFile,
			"templates/site/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Page renders a full site page with status 200. See PageStatus.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus renders a full page, or only its "content" block for HTMX
// requests. Output is buffered so a template error yields a clean 500.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	rn.inject(r, data)

	execName := layoutFile
	if isHTMX(r) {
		execName = "content"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// Fragment renders one named partial as the whole response.
func (rn *Renderer) Fragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	if pd, ok := data.(*PageData); ok {
		rn.inject(r, pd)
	}

	out, err := rn.RenderFragment(name, data)
	if err != nil {
		slog.Error("fragment render failed", "fragment", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// RenderFragment executes a named partial into memory. Used for fragments
// that go into the page cache before being written.
func (rn *Renderer) RenderFragment(name string, data any) ([]byte, error) {
	if rn.partials.Lookup(name) == nil {
		return nil, fmt.Errorf("fragment %q not found", name)
	}
	var buf bytes.Buffer
	if err := rn.partials.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute fragment %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// inject fills the per-request fields every template relies on.
func (rn *Renderer) inject(r *http.Request, data *PageData) {
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	if data.Theme == "" {
		data.Theme, data.ThemeClass = prefs.FromRequest(r)
	}
	for i := range data.Features {
		data.Features[i].CSRFToken = data.CSRFToken
	}
	data.Contact.CSRFToken = data.CSRFToken
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsHTMX is the exported form of isHTMX for handlers.
func IsHTMX(r *http.Request) bool {
	return isHTMX(r)
}
