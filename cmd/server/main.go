package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"incubator/internal/incubator"
	"incubator/internal/incubator/handler"
	"incubator/internal/incubator/metrics"
	"incubator/internal/pages"
	"incubator/internal/platform/config"
	"incubator/internal/platform/httpserver"
	"incubator/internal/platform/logger"
	"incubator/internal/platform/middleware"
	platformredis "incubator/internal/platform/redis"
	"incubator/internal/registry"
	"incubator/pkg/platform/httputil"
)

// healthChecker is a dependency probed by /healthz.
type healthChecker interface {
	Health(ctx context.Context) error
}

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bundle, err := registry.LoadFile(cfg.RegistryFile)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}
	m := metrics.New()

	index, checks, cleanup, err := buildPageIndex(ctx, cfg, log, m)
	if err != nil {
		return err
	}
	defer cleanup()

	svc := incubator.New(incubator.NewSnapshot(bundle), index,
		incubator.WithLogger(log),
		incubator.WithMetrics(m),
		incubator.WithRegistryFile(cfg.RegistryFile),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(log))
	r.Get("/healthz", healthHandler(checks))
	r.Handle("/metrics", promhttp.Handler())
	handler.New(svc, log, cfg.AdminToken).Register(r)

	srv := httpserver.New(cfg.Addr, r, cfg.HTTP)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting incubator", "addr", cfg.Addr, "registry", cfg.RegistryFile)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// buildPageIndex assembles the lookup chain: backend, breaker, optional
// Redis cache, then the in-process LRU.
func buildPageIndex(ctx context.Context, cfg config.Server, log *slog.Logger, m *metrics.Metrics) (pages.Index, map[string]healthChecker, func(), error) {
	checks := map[string]healthChecker{}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var backend pages.Index
	if cfg.Database.URL != "" {
		db, err := sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			return nil, nil, cleanup, fmt.Errorf("open database: %w", err)
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
		closers = append(closers, func() { _ = db.Close() })

		pg := pages.NewPostgresIndex(db,
			pages.WithTable(cfg.Database.PageTable),
			pages.WithPostgresMetrics(m),
		)
		checks["database"] = pg
		backend = pg
		log.Info("page index backed by postgres", "table", cfg.Database.PageTable)
	} else {
		mem, err := pages.LoadInMemoryIndex(cfg.PagesFile)
		if err != nil {
			return nil, nil, cleanup, err
		}
		backend = mem
		log.Info("page index held in memory", "pages_file", cfg.PagesFile)
	}

	var index pages.Index = pages.NewBreaker("pages", backend, pages.BreakerConfig{
		MaxRequests:      cfg.Pages.BreakerMaxRequests,
		Interval:         cfg.Pages.BreakerInterval,
		Timeout:          cfg.Pages.BreakerTimeout,
		FailureThreshold: cfg.Pages.BreakerFailureThreshold,
	}, log, m)

	rdb, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		cleanup()
		return nil, nil, func() {}, fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil {
		closers = append(closers, func() { _ = rdb.Close() })
		checks["redis"] = rdb
		index = pages.NewRedisCache(rdb.Client, index,
			pages.WithRedisLogger(log),
			pages.WithRedisMetrics(m),
			pages.WithRedisTTL(cfg.Redis.CacheTTL),
		)
		log.Info("redis page cache enabled")
	}

	return pages.NewLRUCache(index, cfg.Pages.CacheSize, cfg.Pages.CacheTTL, m), checks, cleanup, nil
}

func healthHandler(checks map[string]healthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := map[string]string{"status": "ok"}
		for name, check := range checks {
			if err := check.Health(ctx); err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				body[name] = err.Error()
				continue
			}
			body[name] = "ok"
		}
		httputil.WriteJSON(w, status, body)
	}
}
