// cmd/agent-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"support-agent/internal/agent"
	"support-agent/internal/agent/knowledge"
	"support-agent/internal/common/config"
	"support-agent/internal/common/database"
	"support-agent/internal/common/logger"
	"support-agent/internal/common/observability"
	"support-agent/internal/featurelog"
	featurerequest "support-agent/internal/handlers/feature-request"
	saleslead "support-agent/internal/handlers/sales-lead"
	technicalsupport "support-agent/internal/handlers/technical-support"
	"support-agent/internal/notify"
	"support-agent/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting agent server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Feature request store ---
	var store featurelog.Store
	switch cfg.FeatureLog.Backend {
	case "postgres":
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")

		store = featurelog.NewPostgresStore(pg.DB, cfg.FeatureLog.Table)

	default:
		store, err = featurelog.NewFileStore(cfg.FeatureLog.Path)
		if err != nil {
			zapLog.Fatal("feature log open failed", zap.Error(err))
		}
	}
	defer store.Close()

	// --- Optional Elasticsearch indexing ---
	if cfg.FeatureLog.IndexingEnabled {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")

		indexer := featurelog.NewIndexer(esClient.Client, cfg.FeatureLog.Index, log)
		store = featurelog.WithIndexer(store, indexer, log)
	}

	// --- Optional classification cache ---
	var cache *agent.ClassificationCache
	if cfg.Agent.CacheEnabled {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")

		cache = agent.NewClassificationCache(redis.Client, config.GetDuration(cfg.Agent.CacheTTL), log)
	}

	// --- Optional escalation notifier ---
	var notifier *notify.Notifier
	if cfg.Notifications.Email.Enabled || cfg.Notifications.SMS.Enabled {
		notifier, err = notify.NewNotifier(cfg.Notifications, log)
		if err != nil {
			zapLog.Fatal("notifier init failed", zap.Error(err))
		}
		zapLog.Info("Escalation notifier initialized")
	}

	// --- Assemble the agent ---
	a := agent.New(
		technicalsupport.NewHandler(knowledge.Default(), log),
		featurerequest.NewHandler(store, log),
		saleslead.NewHandler(&saleslead.Config{
			EnterpriseTeamSize:   cfg.Agent.Sales.EnterpriseTeamSize,
			ProfessionalTeamSize: cfg.Agent.Sales.ProfessionalTeamSize,
			EscalationTeamSize:   cfg.Agent.Sales.EscalationTeamSize,
		}, log),
		cache,
		obs,
		log,
	)

	srv := server.New(cfg, a, notifier, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("agent server stopped")
}
