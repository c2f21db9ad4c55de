package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profiled/internal/audit"
	httpapi "profiled/internal/http"
	"profiled/internal/platform/config"
	"profiled/internal/platform/httpserver"
	"profiled/internal/platform/logger"
	"profiled/internal/platform/metrics"
	"profiled/internal/platform/postgres"
	platformredis "profiled/internal/platform/redis"
	"profiled/internal/profile"
	"profiled/internal/storage"
	"profiled/internal/token"
	"profiled/internal/token/revocation"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis init failed", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	store, err := buildStore(cfg, redisClient)
	if err != nil {
		log.Error("store init failed", "error", err.Error())
		os.Exit(1)
	}

	var opts []token.Option
	if cfg.RevocationStrict && redisClient != nil {
		opts = append(opts, token.WithRevocationList(revocation.NewRedisList(redisClient.Client)))
	}
	verifier := token.NewJWTVerifier(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience, opts...)

	m := metrics.New()
	recorder := audit.NewRecorder(256)
	profiles := profile.NewService(store, recorder, m)

	router := httpapi.New(cfg, log, m, verifier, profiles, recorder)
	srv := httpserver.New(cfg.Addr, router)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go func() {
		_ = audit.NewWorker(store, recorder.Events(), log).Run(workerCtx)
	}()

	log.Info("Server started", "addr", cfg.Addr, "store", cfg.StoreBackend)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}

func buildStore(cfg config.Server, redisClient *platformredis.Client) (storage.DocumentStore, error) {
	switch cfg.StoreBackend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("STORE_BACKEND=redis requires REDIS_URL")
		}
		return storage.NewRedisStore(redisClient.Client), nil
	case "postgres":
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store := storage.NewPostgresStore(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
