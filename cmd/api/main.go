package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/cimillas/webinar-api/internal/app"
	"github.com/cimillas/webinar-api/internal/clock"
	"github.com/cimillas/webinar-api/internal/config"
	"github.com/cimillas/webinar-api/internal/storage/cache"
	"github.com/cimillas/webinar-api/internal/storage/memory"
	"github.com/cimillas/webinar-api/internal/storage/postgres"
	transporthttp "github.com/cimillas/webinar-api/internal/transport/http"
	"github.com/cimillas/webinar-api/migrations"
)

const (
	startupTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

type webinarStore interface {
	app.WebinarRepository
	app.WebinarLister
}

func main() {
	cfg, envPath, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	configureLogger(cfg)
	if envPath != "" {
		log.WithField("path", envPath).Info("loaded env file")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	var (
		store        webinarStore
		healthChecks []transporthttp.HealthCheck
	)
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		store = memory.NewWebinarRepository()
	default:
		pool, err := openPool(startupCtx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()
		store = postgres.NewWebinarRepository(pool)
		healthChecks = append(healthChecks, pool.Ping)
	}

	var (
		reads  app.WebinarRepository = store
		writes app.WebinarRepository = store
	)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		if err := client.Ping(startupCtx).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, cache reads will fall back to storage")
		}
		webinarCache := cache.NewWebinarCache(store, client, cfg.CacheTTL)
		reads = webinarCache
		writes = webinarCache.ForWrites()
		log.WithFields(log.Fields{"addr": cfg.RedisAddr, "ttl": cfg.CacheTTL}).Info("webinar cache enabled")
	}

	clk := clock.NewSystem()
	router := transporthttp.NewRouter(transporthttp.Handlers{
		Organize:     app.NewOrganizeWebinar(writes, clk),
		List:         app.NewListWebinars(store),
		Get:          app.NewGetWebinar(reads),
		ChangeSeats:  app.NewChangeSeats(writes),
		ChangeDates:  app.NewChangeDates(writes, clk),
		HealthChecks: healthChecks,
	}, transporthttp.NewAuthenticator([]byte(cfg.JWTSecret), cfg.JWTIssuer))

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, router), log.StandardLogger())

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithFields(log.Fields{"port": cfg.Port, "storage": cfg.StorageDriver}).Info("api listening")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server error")
		}
	case <-stopCtx.Done():
		log.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("server shutdown error")
	}
	log.Info("server stopped")
}

func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	applied, err := migrations.Apply(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	for _, name := range applied {
		log.WithField("migration", name).Info("applied migration")
	}
	return pool, nil
}

func configureLogger(cfg config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
