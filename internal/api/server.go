package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/pdrosa/steam-sales-api/internal/api/handler"
	"github.com/pdrosa/steam-sales-api/internal/api/handler/router"
	"github.com/pdrosa/steam-sales-api/internal/config"
	"github.com/pdrosa/steam-sales-api/internal/scheduler"
	"github.com/pdrosa/steam-sales-api/internal/usecases/authenticating"
	"github.com/pdrosa/steam-sales-api/internal/usecases/keymanaging"
	"github.com/pdrosa/steam-sales-api/internal/usecases/reporting"
	"github.com/pdrosa/steam-sales-api/internal/usecases/syncing"
	"github.com/pdrosa/steam-sales-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	keyManager keymanaging.KeyManager,
	syncer syncing.Syncer,
	authenticator authenticating.Authenticator,
	salesSyncService *scheduler.SalesSyncService,
	cleanupService *scheduler.CleanupService,
) (*Server, error) {
	syncServices := handler.SyncServices{
		SalesSyncService: salesSyncService,
		Syncer:           syncer,
	}

	cronServices := handler.CronJobServices{
		SalesSyncService: salesSyncService,
		CleanupService:   cleanupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Sales(reporter)...),
		router.WithRoutes(handler.APIKeys(keyManager)...),
		router.WithRoutes(handler.Sync(syncServices)...),
		router.WithRoutes(handler.Cron(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("http server shut down")
	return nil
}
