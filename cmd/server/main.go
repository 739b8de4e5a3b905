// Command server runs the gym admin console gateway: it fronts the remote gym
// REST API with per-resource stores, decodes bearer tokens into sessions and
// gates the admin route surface with role guards.
//
// @title        Gym Admin Console API
// @version      1.0
// @description  Backend-for-frontend gateway for the gym management admin console.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymcore/admin-console/internal/api"
	"github.com/gymcore/admin-console/internal/core/session"
	"github.com/gymcore/admin-console/internal/gymapi"
	"github.com/gymcore/admin-console/internal/infrastructure/config"
	mongodb "github.com/gymcore/admin-console/internal/infrastructure/db/mongo"
	redisdb "github.com/gymcore/admin-console/internal/infrastructure/db/redis"
	"github.com/gymcore/admin-console/internal/infrastructure/queue"
	"github.com/gymcore/admin-console/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	// --- Core wiring ---
	apiClient := gymapi.New(cfg.API.BaseURL, cfg.APITimeout(), log)
	tokenStore := redisdb.NewTokenStore(rdb, cfg.SessionTTL())
	sessions := session.NewManager(tokenStore, log)
	audit := queue.NewDispatcher(0, mongodb.NewAuditRepository(db), log)
	audit.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		API:       apiClient,
		Sessions:  sessions,
		Audit:     audit,
		Redis:     rdb,
		Mongo:     db,
		CookieTTL: cfg.SessionTTL(),
		SecureEnv: cfg.Production(),
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("upstream", cfg.API.BaseURL).Msg("starting admin console gateway")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
