// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handlers_test.go provides in-memory fakes for the stores and clients the
// handlers depend on, so the HTTP behaviour is tested without Postgres,
// Valkey or the network.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"skillsite/internal/ai"
	"skillsite/internal/carousel"
	"skillsite/internal/contact"
	"skillsite/internal/features"
	"skillsite/internal/middleware"
	"skillsite/internal/models"
	"skillsite/internal/render"
	"skillsite/internal/session"
)

type fakeCatalog struct {
	items []models.Item
	err   error
	calls int
}

func (f *fakeCatalog) All(ctx context.Context) ([]models.Item, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeCatalog) FindBySlug(ctx context.Context, slug string) (*models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].Slug == slug {
			it := f.items[i]
			return &it, nil
		}
	}
	return nil, nil
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache { return &fakeCache{data: make(map[string][]byte)} }

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *fakeCache) Set(ctx context.Context, key string, html []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = html
}

type fakeHero struct{ index int }

func (h fakeHero) Current() (int, carousel.Slide) { return h.index, carousel.DefaultSlides[h.index] }
func (h fakeHero) Len() int                       { return len(carousel.DefaultSlides) }
func (h fakeHero) Period() time.Duration          { return carousel.DefaultPeriod }

// fakeSessions applies updates to the in-memory session.
type fakeSessions struct {
	mu       sync.Mutex
	updates  int
	err      error
	onUpdate func()
}

func (f *fakeSessions) Update(ctx context.Context, data *session.Data, fn func(*session.Data)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	if f.onUpdate != nil {
		f.onUpdate()
	}
	if f.err != nil {
		return f.err
	}
	fn(data)
	return nil
}

type fakeRunner struct {
	state features.State
	err   error
	calls int
	input string
}

// Run mimics features.Runner: the state is committed only when the run
// was neither rejected nor abandoned.
func (f *fakeRunner) Run(ctx context.Context, owner string, kind ai.Kind, input string, commit features.Commit) (features.State, error) {
	f.calls++
	f.input = input
	if f.err == nil && commit != nil {
		commit(f.state)
	}
	return f.state, f.err
}

type fakeSubmitter struct {
	err   error
	calls int
	got   contact.Submission
}

func (f *fakeSubmitter) Submit(ctx context.Context, s contact.Submission) error {
	f.calls++
	f.got = s
	return f.err
}

var testItems = []models.Item{
	{Slug: "about-me", Section: models.SectionAbout, Title: "About Neeraj", Body: "Trainer."},
	{Slug: "workshop-ei", Section: models.SectionWorkshop, Title: "EI", Body: "Learn.", ModalTitle: "EI Workshop", ModalBody: "Coming soon!"},
	{Slug: "service-coaching", Section: models.SectionService, Title: "Coaching", Body: "Grow."},
	{Slug: "blog-story", Section: models.SectionBlog, Title: "Brand Story", Body: "Tell it **well**.", URL: "/blog/story"},
}

type testEnv struct {
	router   chi.Router
	catalog  *fakeCatalog
	cache    *fakeCache
	sessions *fakeSessions
	runner   *fakeRunner
	submit   *fakeSubmitter
	guard    *features.Guard
	visitor  *session.Data
}

// newTestEnv wires the handlers behind a chi router. Every request carries
// the env's visitor unless withVisitor is false.
func newTestEnv(t *testing.T, withVisitor bool) *testEnv {
	t.Helper()

	rn, err := render.New(false)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	env := &testEnv{
		catalog:  &fakeCatalog{items: testItems},
		cache:    newFakeCache(),
		sessions: &fakeSessions{},
		runner:   &fakeRunner{},
		submit:   &fakeSubmitter{},
		guard:    features.NewGuard(),
		visitor:  &session.Data{ID: "sess", VisitorID: uuid.New()},
	}

	info := models.ContactInfo{Email: "hello@example.com"}
	site := NewSite(rn, env.catalog, env.cache, fakeHero{index: 2}, env.sessions, info, false)
	feats := NewFeatures(rn, env.runner, env.sessions)
	cont := NewContact(rn, env.submit, env.sessions, env.guard, info)

	r := chi.NewRouter()
	if withVisitor {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := context.WithValue(req.Context(), middleware.VisitorKey, env.visitor)
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}
	r.Get("/", site.Home)
	r.Get("/hero", site.HeroFragment)
	r.Post("/theme", site.ThemeToggle)
	r.Get("/modal/info/{slug}", site.ModalInfo)
	r.Get("/modal/consultation", site.ModalConsultation)
	r.Get("/modal/close", site.ModalClose)
	r.Get("/blog/{name}", site.Article)
	r.Post("/ai/{kind}", feats.Generate)
	r.Post("/contact", cont.Submit)
	r.NotFound(site.NotFound)
	env.router = r

	return env
}

func (e *testEnv) do(method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

var errBoom = errors.New("boom")

func httptestRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serve(e *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func mustRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	rn, err := render.New(false)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return rn
}
