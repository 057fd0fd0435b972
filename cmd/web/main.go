package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"landing/internal/config"
	"landing/internal/content"
	handlers "landing/internal/http/handler"
	"landing/internal/http/middleware"
	"landing/internal/logging"
	"landing/internal/otel"
	"landing/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	loc := cfg.Location()
	log := logging.Stdout(loc, logging.ParseLevel(cfg.LogLevel))

	site := content.Default(cfg.Site.SecurityPath)
	if err := content.Validate(site); err != nil {
		log.Error("content_invalid", "error", err)
		return fmt.Errorf("validate content: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg, "/healthz", "/health")
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	contactSvc, err := service.NewContactService(site.CTA.Acknowledgement, reg)
	if err != nil {
		return fmt.Errorf("init contact service: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(cfg.Site.Brand),
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(promMiddleware.Handler())
	app.Use(compress.New())

	handlers.RegisterRoutes(app, handlers.PageOptions{
		Content:      site,
		Brand:        cfg.Site.Brand,
		ContactEmail: cfg.Site.ContactEmail,
		SecurityPath: cfg.Site.SecurityPath,
		HTMXSrc:      cfg.Site.HTMXSrc,
		StaticMaxAge: cfg.Server.StaticMaxAge,
	}, contactSvc, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	log.Info("server_starting", "addr", cfg.Addr(), "app_host", cfg.AppHost)
	return serve(ctx, app, cfg.Addr(), cfg.Server.ShutdownTimeout, shutdownTracing, log)
}

// serve listens on addr until ctx is cancelled, then shuts the server down.
// Buffered spans are flushed on every exit path, including a failed Listen.
func serve(ctx context.Context, app *fiber.App, addr string, timeout time.Duration, shutdownTracing otel.ShutdownFunc, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	var listenErr error
	select {
	case listenErr = <-errCh:
	case <-ctx.Done():
		log.Info("server_stopping")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if listenErr == nil {
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server_shutdown_failed", "error", err)
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing_shutdown_failed", "error", err)
	}
	if listenErr != nil {
		return fmt.Errorf("failed to start server: %w", listenErr)
	}
	log.Info("server_stopped")
	return nil
}
