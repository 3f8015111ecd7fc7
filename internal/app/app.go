package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/config"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/dataset"
	apierrors "github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/errors"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/infrastructure"
	customMiddleware "github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/middleware"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/narrative"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/services"
	handlers "github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/transport/http"
	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/validation"
)

// Application is the assembled service: configuration, router, server, and
// the analytics stack behind them.
type Application struct {
	Config   *config.Config
	Router   *chi.Mux
	Server   *http.Server
	Logger   *slog.Logger
	Registry *dataset.Registry
	Service  *services.AnalyticsService

	promRegistry *prometheus.Registry
}

// NewApplication creates a new application instance with dependency injection.
// narrator may be nil; summaries then carry the deterministic local narrative.
func NewApplication(narrator narrative.Generator) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	registry := dataset.NewRegistry(logger)
	service := services.NewAnalyticsService(registry, narrator, logger, services.NewMetrics(promRegistry))

	application := &Application{
		Config:       cfg,
		Logger:       logger,
		Registry:     registry,
		Service:      service,
		promRegistry: promRegistry,
	}

	application.Router = application.buildRouter()
	application.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        application.Router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return application, nil
}

// buildRouter assembles the middleware chain and mounts the API routes.
func (a *Application) buildRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.SecurityHeaders)

	if a.Config.Security.EnableCORS {
		r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
			AllowedOrigins: a.Config.Security.AllowedOrigins,
			Logger:         a.Logger,
		}))
	}

	if a.Config.Security.RateLimit.Enabled {
		limiter := customMiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		)
		r.Use(limiter.Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	fileValidator := validation.NewFileValidator(a.Config.Upload, a.Logger)

	uploadHandler := handlers.NewUploadHandler(a.Service, fileValidator, a.Logger, errorHandler)
	analyticsHandler := handlers.NewAnalyticsHandler(a.Service, a.Logger, errorHandler)
	healthHandler := handlers.NewHealthHandler(a.Service)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/upload", uploadHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
		r.Mount("/", analyticsHandler.Routes())
	})

	r.Handle("/metrics", promhttp.HandlerFor(a.promRegistry, promhttp.HandlerOpts{}))

	return r
}

// Run starts the HTTP server and blocks until the context is cancelled, an
// interrupt arrives, or the server fails. Shutdown is graceful within the
// configured timeout.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("server starting",
			slog.String("addr", a.Server.Addr),
			slog.Int("port", a.Config.Server.Port))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.Logger.Info("shutdown requested")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	infrastructure.CloseLogFile()
	if err != nil {
		return err
	}
	a.Logger.Info("server stopped", slog.String("uptime_ended", time.Now().Format(time.RFC3339)))
	return nil
}
