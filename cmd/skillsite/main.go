// Package main is the entry point for the skill site server.
// It loads configuration, connects to services, seeds the catalog, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillsite/internal/ai"
	"skillsite/internal/cache"
	"skillsite/internal/carousel"
	"skillsite/internal/config"
	"skillsite/internal/contact"
	"skillsite/internal/database"
	"skillsite/internal/features"
	"skillsite/internal/handlers"
	"skillsite/internal/logger"
	"skillsite/internal/middleware"
	"skillsite/internal/models"
	"skillsite/internal/render"
	"skillsite/internal/retry"
	"skillsite/internal/router"
	"skillsite/internal/session"
	"skillsite/internal/store"
	"skillsite/web"
)

func main() {
	// Load configuration from environment variables (and .env if present).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text in development, with
	// optional file rotation.
	log, logCloser := logger.New(cfg.Log, cfg.IsDev())
	defer logCloser.Close()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rc := retry.DefaultConfig().Override(cfg.ConnectAttempts, cfg.ConnectDelay)

	// Connect to PostgreSQL.
	db, err := database.Connect(ctx, cfg.DSN(), rc)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the site catalog (no-op if it already has content).
	seeded, err := database.Seed(ctx, db)
	if err != nil {
		slog.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (sessions + fragment cache).
	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyAddr(), cfg.ValkeyPassword, rc)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	catalogStore := store.NewCatalogStore(db, cfg.CatalogCacheTTL)

	// L2 fragment cache. Fresh content makes every cached fragment stale.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	if seeded {
		pageCache.InvalidateAll(ctx)
		catalogStore.Invalidate()
	}

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Generative-text client. Without a key every request fails with the
	// feature's connection message and the rest of the site keeps working.
	var provider ai.Provider
	if cfg.AIEnabled() {
		provider = ai.NewGemini(ai.ProviderConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.GeminiTimeout,
		})
	} else {
		slog.Warn("GEMINI_API_KEY not set; AI features will report a connection error")
	}
	generator := ai.NewGenerator(provider)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"ai_provider", generator.ProviderName(),
		"form_endpoint_set", cfg.FormEndpoint != "",
		"connect_attempts", rc.Attempts,
	)

	runner := features.NewRunner(generator, features.NewGuard())
	runner.Observe(func(kind ai.Kind, s features.Status) {
		slog.Debug("feature status", "kind", kind, "status", s)
	})

	// The carousel runs for the whole process lifetime.
	hero := carousel.New(carousel.DefaultSlides, cfg.CarouselPeriod)
	go hero.Run(ctx)
	defer hero.Stop()

	info := models.ContactInfo{
		Name:     cfg.Contact.Name,
		Email:    cfg.Contact.Email,
		Phone:    cfg.Contact.Phone,
		Address:  cfg.Contact.Address,
		LinkedIn: cfg.Contact.LinkedIn,
		YouTube:  cfg.Contact.YouTube,
	}

	// Create handler groups with their dependencies.
	siteHandlers := handlers.NewSite(renderer, catalogStore, pageCache, hero, sessionStore, info, secureCookies)
	featureHandlers := handlers.NewFeatures(renderer, runner, sessionStore)
	contactHandlers := handlers.NewContact(renderer, contact.NewClient(cfg.FormEndpoint, cfg.FormTimeout), sessionStore, features.NewGuard(), info)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		slog.Error("failed to open embedded assets", "error", err)
		os.Exit(1)
	}

	r := router.New(sessionStore, limiter, siteHandlers, featureHandlers, contactHandlers, static, secureCookies)

	// WriteTimeout must accommodate the generator's upstream timeout.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.GeminiTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		slog.Error("server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
