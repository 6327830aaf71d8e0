package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/watch-price-tracker/internal/api/handlers"
	"github.com/donaldgifford/watch-price-tracker/internal/api/middleware"
	"github.com/donaldgifford/watch-price-tracker/internal/config"
	"github.com/donaldgifford/watch-price-tracker/internal/engine"
	"github.com/donaldgifford/watch-price-tracker/internal/store"
	"github.com/donaldgifford/watch-price-tracker/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("database config: %w", err)
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, &cfg.Tracing, Version)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error("tracer shutdown failed", "error", err)
		}
	}()

	pg, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	if n, err := pg.RecoverStaleUploads(ctx, cfg.Schedule.StaleJobTimeout); err != nil {
		logger.Error("failed to recover stale uploads", "error", err)
	} else if n > 0 {
		logger.Warn("marked stale uploads as failed", "count", n)
	}

	cat, err := engine.LoadCatalog(ctx, &cfg.Catalog, pg, logger)
	if err != nil {
		return err
	}
	pipe, err := engine.NewPipeline(&cfg.Pipeline, cat, logger)
	if err != nil {
		return err
	}
	eng := engine.NewEngine(pg, pipe,
		engine.WithLogger(logger),
		engine.WithMaxAmount(cfg.Pipeline.MaxAmount),
	)

	sched, err := engine.NewScheduler(
		eng, pg,
		cfg.Schedule.CleanupInterval,
		cfg.Schedule.Retention,
		cfg.Schedule.StaleJobTimeout,
		logger,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.RecoverStaleJobRuns(ctx)
	sched.Start()

	e := newServer(cfg, logger, serverDeps{
		store:     pg,
		engine:    eng,
		scheduler: sched,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
		}
	}

	logger.Info("shutting down server")

	<-sched.Stop().Done()

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store.PostgresStore, error) {
	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.PoolOptions{
		MaxConns:       int32(cfg.Database.PoolSize), //nolint:gosec // bounded by config
		ConnectRetries: cfg.Database.ConnectRetries,
		RetryDelay:     cfg.Database.ConnectRetryDelay,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pg.Migrate(ctx); err != nil {
		pg.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return pg, nil
}

// serverDeps are the collaborators the HTTP routes are bound to.
type serverDeps struct {
	store     store.Store
	engine    *engine.Engine
	scheduler handlers.CleanupRunner
}

func newServer(cfg *config.Config, logger *slog.Logger, deps serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	limiter := middleware.NewRateLimiter(cfg.Upload.RateLimit.PerSecond, cfg.Upload.RateLimit.Burst)

	e.Use(
		middleware.Recovery(logger),
		echo.WrapMiddleware(otelhttp.NewMiddleware("watch-price-tracker")),
		middleware.RequestLog(logger),
		middleware.Metrics(),
		middleware.RateLimit(limiter, middleware.MethodAndPath(http.MethodPost, "/api/v1/uploads")),
	)

	healthH := handlers.NewHealthHandler(deps.store)
	e.GET("/healthz", healthH.Healthz)
	e.GET("/readyz", healthH.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Watch Price Tracker API", Version))

	pipe := deps.engine.Pipeline()
	handlers.RegisterParseRoutes(api, handlers.NewParseHandler(pipe, cfg.Cache.TTL, cfg.Cache.Cleanup))
	handlers.RegisterUploadRoutes(api, handlers.NewUploadsHandler(deps.engine, deps.store, cfg.Upload.MaxBytes))
	handlers.RegisterRecordRoutes(api, handlers.NewRecordsHandler(deps.store))
	handlers.RegisterBrandRoutes(api, handlers.NewBrandsHandler(deps.store))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(deps.store))
	handlers.RegisterTriggerRoutes(api, handlers.NewCleanupHandler(deps.scheduler))
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(deps.store, pipe))

	return e
}
