// Package router sets up all HTTP routes and middleware chains for the
// skill site. Every page and fragment goes through the visitor session and
// CSRF middleware; the endpoints that call external services are also
// rate limited.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skillsite/internal/handlers"
	"skillsite/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up. static is served under /static/.
func New(
	sessions middleware.SessionLoader,
	limiter *middleware.RateLimiter,
	site *handlers.Site,
	feats *handlers.Features,
	contact *handlers.Contact,
	static fs.FS,
	secureCookies bool,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check and assets: no session, no CSRF.
	r.Get("/health", healthHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(static)))

	r.Group(func(r chi.Router) {
		r.Use(middleware.LoadVisitor(sessions))
		r.Use(middleware.NewCSRF(secureCookies))

		r.Get("/", site.Home)
		r.Get("/hero", site.HeroFragment)
		r.Post("/theme", site.ThemeToggle)
		r.Get("/blog/{name}", site.Article)

		r.Route("/modal", func(r chi.Router) {
			r.Get("/info/{slug}", site.ModalInfo)
			r.Get("/consultation", site.ModalConsultation)
			r.Get("/close", site.ModalClose)
		})

		// Endpoints that call the generator or the form service.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/ai/{kind}", feats.Generate)
			r.Post("/contact", contact.Submit)
		})

		r.NotFound(site.NotFound)
	})

	return r
}

// staticHandler serves embedded assets with a one-day cache lifetime.
func staticHandler(static fs.FS) http.Handler {
	files := http.FileServer(http.FS(static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		files.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
