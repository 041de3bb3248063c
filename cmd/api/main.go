package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdrosa/steam-sales-api/infrastructure/database/postgres"
	"github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam"
	"github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/steamclient"
	"github.com/pdrosa/steam-sales-api/infrastructure/keystore"
	"github.com/pdrosa/steam-sales-api/infrastructure/repository"
	"github.com/pdrosa/steam-sales-api/internal/api"
	"github.com/pdrosa/steam-sales-api/internal/config"
	"github.com/pdrosa/steam-sales-api/internal/scheduler"
	"github.com/pdrosa/steam-sales-api/internal/usecases/authenticating"
	"github.com/pdrosa/steam-sales-api/internal/usecases/keymanaging"
	"github.com/pdrosa/steam-sales-api/internal/usecases/reporting"
	"github.com/pdrosa/steam-sales-api/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesRepo := repository.NewSalesRepository(pgConn)
	apiKeyRepo := repository.NewAPIKeyRepository(pgConn)
	syncTaskRepo := repository.NewSyncTaskRepository(pgConn)
	syncMetaRepo := repository.NewSyncMetaRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	keys, err := keystore.New(cfg.Keystore.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open keystore")
	}

	steamClient := steamclient.NewClient(cfg)
	steamIntegrator := steam.New(cfg, steamClient)

	authenticator := authenticating.NewService(userRepo, cfg)
	keyManager := keymanaging.NewService(keys, apiKeyRepo, salesRepo, syncTaskRepo, syncMetaRepo)
	reporter := reporting.NewService(salesRepo)
	syncer := syncing.NewService(cfg, steamIntegrator, keys, apiKeyRepo, salesRepo, syncTaskRepo, syncMetaRepo)

	salesSyncService := scheduler.NewSalesSyncService(syncer, cfg)
	cleanupService := scheduler.NewCleanupService(salesRepo, syncTaskRepo, cfg)

	if err := salesSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start sales sync scheduler")
	}

	if err := cleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start cleanup scheduler")
	}

	server, err := api.New(
		cfg,
		reporter,
		keyManager,
		syncer,
		authenticator,
		salesSyncService,
		cleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
