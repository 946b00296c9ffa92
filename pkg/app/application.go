package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"

	"creatorverse/pkg/config"
	"creatorverse/pkg/contracts"
	"creatorverse/pkg/middleware"
)

type Application struct {
	cfg              *config.Config
	server           *http.Server
	handler          http.Handler
	idempotencyStore *middleware.InMemoryIdempotencyStore
	rateLimiter      *middleware.RateLimiter
	shutdownHooks    []func(ctx context.Context)
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp mounts the health routes behind recovery and logging only, and the
// API routes behind the full middleware stack.
func (a *Application) SetApp(appHandler, healthHandler contracts.Handler) {
	mux := http.NewServeMux()

	health := a.healthStack(healthHandler)
	mux.Handle("/health", health)
	mux.Handle("/ready", health)
	mux.Handle("/", a.appStack(appHandler))

	a.handler = mux
	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}
	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

// OnShutdown registers fn to run after the server stops accepting requests and
// before shared clients are closed.
func (a *Application) OnShutdown(fn func(ctx context.Context)) {
	a.shutdownHooks = append(a.shutdownHooks, fn)
}

func (a *Application) runShutdownHooks(ctx context.Context) {
	for _, fn := range a.shutdownHooks {
		fn(ctx)
	}
}

func (a *Application) Handler() http.Handler {
	return a.handler
}

func (a *Application) healthStack(h contracts.Handler) http.Handler {
	router := httprouter.New()
	h.RegisterRoutes(router)

	return middleware.Chain(router,
		middleware.Recovery(a.cfg.Log),
		middleware.RequestLogging(a.cfg.Log),
	)
}

func (a *Application) appStack(h contracts.Handler) http.Handler {
	router := httprouter.New()
	h.RegisterRoutes(router)

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(a.cfg.IdempotencyTTL)
	a.rateLimiter = middleware.NewRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		middleware.MutatingClientIP,
		a.cfg.Log,
	)

	a.cfg.Log.Info("API endpoints configured with full middleware stack")
	return middleware.Chain(router,
		middleware.Recovery(a.cfg.Log),
		middleware.RequestLogging(a.cfg.Log),
		middleware.MaxBodySize(int64(a.cfg.MaxRequestSize)),
		middleware.ContentTypeValidation(a.cfg.Log),
		middleware.RateLimit(a.rateLimiter),
		middleware.RequestTimeout(a.cfg.RequestTimeout),
		middleware.Idempotency(a.idempotencyStore, middleware.DefaultIdempotencyHeader, a.cfg.Log),
	)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			a.cfg.Log.Error("HTTP server failed", "error", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		a.runShutdownHooks(ctx)
		cancel()
		a.stopWorkers()
		a.cfg.GracefulShutdown()
		os.Exit(1)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig.String())
		a.gracefulShutdown()
	}
}

func (a *Application) stopWorkers() {
	if a.idempotencyStore != nil {
		a.idempotencyStore.Stop()
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server", "error", err)
		}
	}

	a.runShutdownHooks(ctx)
	a.stopWorkers()
	a.cfg.GracefulShutdown()
	a.cfg.Log.Info("Server stopped gracefully")
}
