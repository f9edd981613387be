package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/happypaws-scheduler/internal/db"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/logger"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/middleware"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/routes"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/validators"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	if err := validators.Register(); err != nil {
		return err
	}

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	limiter, closeLimiter := newBookingLimiter(ctx, cfg)
	defer closeLimiter()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.CORSMiddleware(),
		middleware.RequestID(),
		middleware.AccessLog(log),
	)

	routes.RegisterRoutes(r, routes.Dependencies{
		DB:      db,
		Config:  cfg,
		Clock:   timezone.NewClock(cfg.ClinicTimezone),
		Audit:   dispatcher,
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newBookingLimiter uses Redis when REDIS_URL is set and reachable, and an
// in-process limiter otherwise.
func newBookingLimiter(ctx context.Context, cfg *config.Config) (middleware.Limiter, func()) {
	memory := middleware.NewMemoryLimiter(cfg.BookingRateLimit, cfg.BookingRateWindow, nil)
	if cfg.RedisURL == "" {
		return memory, func() {}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Warn("invalid REDIS_URL, using in-process rate limiter", "err", err)
		return memory, func() {}
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unreachable, using in-process rate limiter", "err", err)
		_ = rdb.Close()
		return memory, func() {}
	}

	slog.Info("redis rate limiter enabled")
	return middleware.NewRedisLimiter(rdb, cfg.BookingRateLimit, cfg.BookingRateWindow), func() { _ = rdb.Close() }
}
