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

	"github.com/coursecast/coursecast/internal/bootstrap"
	"github.com/coursecast/coursecast/internal/catalog"
	"github.com/coursecast/coursecast/internal/config"
	"github.com/coursecast/coursecast/internal/database"
	"github.com/coursecast/coursecast/internal/earnings"
	"github.com/coursecast/coursecast/internal/engagement"
	"github.com/coursecast/coursecast/internal/entitlement"
	"github.com/coursecast/coursecast/internal/eventlog"
	"github.com/coursecast/coursecast/internal/gateway"
	"github.com/coursecast/coursecast/internal/handler"
	"github.com/coursecast/coursecast/internal/royalty"
	"github.com/coursecast/coursecast/internal/scheduler"
	"github.com/coursecast/coursecast/internal/server"
	"github.com/coursecast/coursecast/internal/settlement"
	"github.com/coursecast/coursecast/internal/subscription"
	"github.com/coursecast/coursecast/internal/worker"
)

const (
	dbMaxConns           = 10
	dbMaxIdleTime        = 30 * time.Minute
	dbMaxLifetime        = time.Hour
	workerCount          = 4
	workerQueueSize      = 64
	royaltyRunInterval   = 24 * time.Hour
	shutdownGracePeriod  = 30 * time.Second
	startupSchemaTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), startupSchemaTimeout)
	if err := database.ApplySchema(schemaCtx, dbPool); err != nil {
		cancelSchema()
		slog.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}
	cancelSchema()

	repos := bootstrap.InitializeRepositories(dbPool)

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	eventLogService := eventlog.NewService(repos.EventLog)
	if err := bootstrap.RegisterEventLogger(eventBus, eventLogService); err != nil {
		slog.Error("Failed to register event logger", "error", err)
		os.Exit(1)
	}

	gatewayClient := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewaySecretKey)

	settlementService := settlement.NewService(repos.Ledger, repos.Catalog, repos.User, gatewayClient, publisher)
	entitlementService := entitlement.NewService(repos.Ledger, repos.Catalog, repos.User)
	earningsService := earnings.NewService(repos.Ledger, repos.Catalog, repos.User, repos.Royalty)
	royaltyService := royalty.NewService(repos.Royalty, repos.Engagement, repos.User, repos.Ledger,
		publisher, int64(cfg.StreamingPriceCents))
	catalogService := catalog.NewService(repos.Catalog, repos.User, publisher)
	engagementService := engagement.NewService(repos.Engagement, repos.Catalog, entitlementService)
	subscriptionService := subscription.NewService(repos.User, publisher)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), startupSchemaTimeout)
	if err := bootstrap.SeedCatalog(seedCtx, catalogService); err != nil {
		cancelSeed()
		slog.Error("Failed to seed catalog", "error", err)
		os.Exit(1)
	}
	cancelSeed()

	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(royaltyRunInterval, royalty.NewDistributionJob(royaltyService))
	sched.Schedule(time.Duration(cfg.ReconcileIntervalMinutes)*time.Minute,
		earnings.NewReconcileJob(earningsService))
	sched.Schedule(bootstrap.EventLogCleanupInterval,
		eventlog.NewCleanupJob(eventLogService, cfg.EventLogRetentionDays))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, server.Services{
		Settlement:   settlementService,
		Entitlement:  entitlementService,
		Earnings:     earningsService,
		Royalty:      royaltyService,
		Catalog:      catalogService,
		Engagement:   engagementService,
		Subscription: subscriptionService,
		Gateway:      gatewayClient,
		Ledger:       repos.Ledger,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()
	slog.Info("Server started", "port", cfg.Port, "environment", cfg.Environment)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})
}
