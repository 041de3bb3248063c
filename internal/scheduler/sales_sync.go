package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/pdrosa/steam-sales-api/internal/config"
	"github.com/pdrosa/steam-sales-api/internal/usecases/syncing"
)

// SalesSyncConfig carries the scheduler settings for the nightly sales sync.
type SalesSyncConfig struct {
	CronSchedule        string
	MaxConcurrentDates  int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// SalesSyncService schedules the recurring sales sync and exposes a manual
// trigger for the dashboard.
type SalesSyncService struct {
	scheduler           *gocron.Scheduler
	config              SalesSyncConfig
	syncer              syncing.Syncer
	appCtx              context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSalesSyncService(syncer syncing.Syncer, appConfig *config.Config) *SalesSyncService {
	syncConfig := SalesSyncConfig{
		CronSchedule:        appConfig.SalesSync.CronSchedule,
		MaxConcurrentDates:  appConfig.SalesSync.MaxConcurrentDates,
		RequestDelaySeconds: appConfig.SalesSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.SalesSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"max_concurrent_dates":  syncConfig.MaxConcurrentDates,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("sales sync scheduler configured")

	return &SalesSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start registers the cron job and resumes any tasks left over from an
// interrupted run.
func (s *SalesSyncService) Start(ctx context.Context) error {
	s.appCtx = ctx

	if err := s.syncer.ResetStalled(); err != nil {
		logrus.WithError(err).Error("failed to reset stalled sync tasks")
	}

	if !s.config.SyncEnabled {
		logrus.Info("sales sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting sales sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllKeys(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sales sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping sales sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SalesSyncService) syncAllKeys(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("sales sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("starting sales sync for all registered keys")

	if err := s.syncer.ResumePending(ctx); err != nil {
		logrus.WithError(err).Error("failed to resume pending sync tasks")
	}

	results, err := s.syncer.SyncAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("sales sync aborted")
		return
	}

	var totalRecords int64
	for _, result := range results {
		totalRecords += result.RecordCount
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"keys":     len(results),
		"records":  totalRecords,
	}).Info("sales sync completed")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync starts a sync outside the schedule, unless one is
// already running.
func (s *SalesSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("sales sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	ctx := s.appCtx
	if ctx == nil {
		ctx = context.Background()
	}

	logrus.Info("starting manual sales sync")
	go s.syncAllKeys(ctx)
}

// GetStatus reports the scheduler state for the status endpoint.
func (s *SalesSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentDates,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
