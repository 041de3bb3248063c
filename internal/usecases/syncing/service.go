package syncing

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam"
	"github.com/pdrosa/steam-sales-api/infrastructure/keystore"
	"github.com/pdrosa/steam-sales-api/infrastructure/repository"
	"github.com/pdrosa/steam-sales-api/internal/config"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

var (
	ErrKeyNotFound   = errors.New("api key not found")
	ErrSecretMissing = errors.New("api key secret missing from keystore")
)

// Syncer keeps stored sales in step with Steam: it asks which dates changed
// since the last run, fetches those dates and advances the highwatermark only
// after every date landed.
type Syncer interface {
	SyncKey(ctx context.Context, apiKeyID string) (*domain.FetchResult, error)
	SyncAll(ctx context.Context) (map[string]*domain.FetchResult, error)
	ResumePending(ctx context.Context) error
	PendingCounts() ([]*domain.PendingTaskCount, error)
	PendingTasks() ([]*domain.SyncTask, error)
	ResetStalled() error
}

type Service struct {
	cfg      *config.Config
	steam    steam.SteamIntegrator
	keys     keystore.Store
	keyRepo  repository.APIKeyRepository
	sales    repository.SalesRepository
	tasks    repository.SyncTaskRepository
	syncMeta repository.SyncMetaRepository
}

func NewService(
	cfg *config.Config,
	steamIntegrator steam.SteamIntegrator,
	keys keystore.Store,
	keyRepo repository.APIKeyRepository,
	sales repository.SalesRepository,
	tasks repository.SyncTaskRepository,
	syncMeta repository.SyncMetaRepository,
) Syncer {
	return &Service{
		cfg:      cfg,
		steam:    steamIntegrator,
		keys:     keys,
		keyRepo:  keyRepo,
		sales:    sales,
		tasks:    tasks,
		syncMeta: syncMeta,
	}
}

// SyncKey runs a full sync cycle for one credential.
func (s *Service) SyncKey(ctx context.Context, apiKeyID string) (*domain.FetchResult, error) {
	info, err := s.keyRepo.GetByID(apiKeyID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrKeyNotFound
	}

	apiKey, err := s.keys.Get(apiKeyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read api key secret")
	}
	if apiKey == "" {
		return nil, ErrSecretMissing
	}

	storedHighwatermark, err := s.syncMeta.GetHighwatermark(apiKeyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read highwatermark")
	}

	changedDates, newHighwatermark, err := s.steam.FetchChangedDates(apiKey, storedHighwatermark)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch changed dates")
	}

	existingDates, err := s.sales.ExistingDates(apiKeyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list existing dates")
	}

	// Dates never seen before come first so a fresh credential gets data on
	// the dashboard before re-fetches of already-stored dates.
	sortDatesNewFirst(changedDates, existingDates)

	logrus.WithFields(logrus.Fields{
		"api_key_id":    apiKeyID,
		"changed_dates": len(changedDates),
		"highwatermark": storedHighwatermark,
	}).Info("starting sales sync")

	if len(changedDates) == 0 {
		return &domain.FetchResult{
			NewHighwatermark: storedHighwatermark,
			DatesProcessed:   []string{},
		}, nil
	}

	if err := s.tasks.Replace(apiKeyID, changedDates); err != nil {
		return nil, errors.Wrap(err, "failed to register sync tasks")
	}

	recordCount, processed, err := s.processDates(ctx, apiKey, apiKeyID, changedDates)
	if err != nil {
		return nil, err
	}

	// The highwatermark only advances once every changed date is stored;
	// a partial run keeps its tasks and is retried from where it stopped.
	if err := s.syncMeta.SetHighwatermark(apiKeyID, newHighwatermark); err != nil {
		return nil, errors.Wrap(err, "failed to advance highwatermark")
	}

	logrus.WithFields(logrus.Fields{
		"api_key_id":        apiKeyID,
		"records":           recordCount,
		"dates":             len(processed),
		"new_highwatermark": newHighwatermark,
	}).Info("sales sync completed")

	return &domain.FetchResult{
		NewHighwatermark: newHighwatermark,
		RecordCount:      recordCount,
		DatesProcessed:   processed,
	}, nil
}

// SyncAll syncs every registered credential sequentially, collecting results
// per key. One failing key does not stop the others.
func (s *Service) SyncAll(ctx context.Context) (map[string]*domain.FetchResult, error) {
	infos, err := s.keyRepo.List()
	if err != nil {
		return nil, err
	}

	results := make(map[string]*domain.FetchResult, len(infos))

	for _, info := range infos {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		result, err := s.SyncKey(ctx, info.ID)
		if err != nil {
			logrus.WithError(err).WithField("api_key_id", info.ID).Error("sync failed for key")
			continue
		}
		results[info.ID] = result

		if delay := s.cfg.SalesSync.RequestDelaySeconds; delay > 0 {
			time.Sleep(time.Duration(delay) * time.Second)
		}
	}

	return results, nil
}

// ResumePending retries tasks left over from an interrupted run without
// asking Steam for changed dates again.
func (s *Service) ResumePending(ctx context.Context) error {
	pending, err := s.tasks.Pending()
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return nil
	}

	datesByKey := make(map[string][]string)
	for _, task := range pending {
		datesByKey[task.APIKeyID] = append(datesByKey[task.APIKeyID], task.Date)
	}

	logrus.WithField("tasks", len(pending)).Info("resuming pending sync tasks")

	for apiKeyID, dates := range datesByKey {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		apiKey, err := s.keys.Get(apiKeyID)
		if err != nil {
			return errors.Wrap(err, "failed to read api key secret")
		}
		if apiKey == "" {
			logrus.WithField("api_key_id", apiKeyID).Warn("skipping pending tasks, secret missing")
			continue
		}

		if _, _, err := s.processDates(ctx, apiKey, apiKeyID, dates); err != nil {
			logrus.WithError(err).WithField("api_key_id", apiKeyID).Error("failed to resume tasks for key")
		}
	}

	return nil
}

func (s *Service) PendingCounts() ([]*domain.PendingTaskCount, error) {
	return s.tasks.CountPending()
}

// PendingTasks lists the open queue entries for the status endpoints.
func (s *Service) PendingTasks() ([]*domain.SyncTask, error) {
	return s.tasks.Pending()
}

// ResetStalled puts tasks stuck in in_progress back to todo, for use on
// startup after a crash mid-sync.
func (s *Service) ResetStalled() error {
	reset, err := s.tasks.ResetInProgress()
	if err != nil {
		return err
	}

	if reset > 0 {
		logrus.WithField("tasks", reset).Warn("reset stalled sync tasks")
	}

	return nil
}

// processDates fetches and stores the given dates in small concurrent
// batches, marking each task done as its date lands.
func (s *Service) processDates(ctx context.Context, apiKey, apiKeyID string, dates []string) (int64, []string, error) {
	batchSize := s.cfg.SalesSync.MaxConcurrentDates
	if batchSize <= 0 {
		batchSize = 3
	}

	var totalRecords int64
	processed := make([]string, 0, len(dates))

	for start := 0; start < len(dates); start += batchSize {
		end := start + batchSize
		if end > len(dates) {
			end = len(dates)
		}

		batch := dates[start:end]
		counts := make([]int64, len(batch))

		group, groupCtx := errgroup.WithContext(ctx)

		for i, date := range batch {
			i, date := i, date
			group.Go(func() error {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				count, err := s.processDate(apiKey, apiKeyID, date)
				if err != nil {
					return errors.Wrapf(err, "date %s", date)
				}

				counts[i] = count
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			return totalRecords, processed, err
		}

		for i, date := range batch {
			totalRecords += counts[i]
			processed = append(processed, date)
		}
	}

	return totalRecords, processed, nil
}

func (s *Service) processDate(apiKey, apiKeyID, date string) (int64, error) {
	taskID := domain.SyncTaskID(apiKeyID, date)

	if err := s.tasks.MarkInProgress(taskID); err != nil {
		return 0, errors.Wrap(err, "failed to mark task in progress")
	}

	records, err := s.steam.FetchSalesForDate(apiKey, apiKeyID, date)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch sales")
	}

	if err := s.sales.SaveBatch(records); err != nil {
		return 0, errors.Wrap(err, "failed to store sales")
	}

	if err := s.tasks.MarkDone(taskID); err != nil {
		return 0, errors.Wrap(err, "failed to mark task done")
	}

	logrus.WithFields(logrus.Fields{
		"api_key_id": apiKeyID,
		"date":       date,
		"records":    len(records),
	}).Debug("date synced")

	return int64(len(records)), nil
}

// sortDatesNewFirst orders dates so that ones with no stored data come first,
// chronologically within each group.
func sortDatesNewFirst(dates []string, existing map[string]struct{}) {
	sort.SliceStable(dates, func(i, j int) bool {
		_, iExists := existing[dates[i]]
		_, jExists := existing[dates[j]]

		if iExists != jExists {
			return !iExists
		}
		return dates[i] < dates[j]
	})
}
