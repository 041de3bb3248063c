package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/pdrosa/steam-sales-api/infrastructure/repository"
	"github.com/pdrosa/steam-sales-api/internal/config"
)

// CleanupConfig carries the settings for the periodic housekeeping job.
type CleanupConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// CleanupService prunes expired sales rows, logically duplicated rows and
// completed sync tasks on a schedule.
type CleanupService struct {
	scheduler *gocron.Scheduler
	config    CleanupConfig
	sales     repository.SalesRepository
	tasks     repository.SyncTaskRepository
}

func NewCleanupService(
	sales repository.SalesRepository,
	tasks repository.SyncTaskRepository,
	appConfig *config.Config,
) *CleanupService {
	cleanupConfig := CleanupConfig{
		CronSchedule:  appConfig.Cleanup.CronSchedule,
		RetentionDays: appConfig.Cleanup.RetentionDays,
		Enabled:       appConfig.Cleanup.Enabled,
	}

	return &CleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		sales:     sales,
		tasks:     tasks,
	}
}

func (s *CleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("cleanup disabled by configuration")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"cron":           s.config.CronSchedule,
		"retention_days": s.config.RetentionDays,
	}).Info("starting cleanup scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunOnce()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping cleanup scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executes one housekeeping pass. Also used by the CLI.
func (s *CleanupService) RunOnce() {
	startTime := time.Now()

	if s.config.RetentionDays > 0 {
		deleted, err := s.sales.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("failed to prune expired sales")
		} else if deleted > 0 {
			logrus.WithFields(logrus.Fields{
				"rows":           deleted,
				"retention_days": s.config.RetentionDays,
			}).Info("expired sales pruned")
		}
	}

	duplicates, err := s.sales.DeleteDuplicateLogical()
	if err != nil {
		logrus.WithError(err).Error("failed to prune duplicated sales")
	} else if duplicates > 0 {
		logrus.WithField("rows", duplicates).Info("duplicated sales pruned")
	}

	if err := s.tasks.ClearCompleted(); err != nil {
		logrus.WithError(err).Error("failed to clear completed sync tasks")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("cleanup pass completed")
}
