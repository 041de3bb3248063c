package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/pdrosa/steam-sales-api/infrastructure/repository/mocks"
	"github.com/pdrosa/steam-sales-api/internal/domain"
	syncmocks "github.com/pdrosa/steam-sales-api/internal/usecases/syncing/mocks"
)

func TestSalesSyncService_syncAllKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)

	service := &SalesSyncService{
		config: SalesSyncConfig{SyncEnabled: true},
		syncer: mockSyncer,
	}

	gomock.InOrder(
		mockSyncer.EXPECT().ResumePending(gomock.Any()).Return(nil),
		mockSyncer.EXPECT().SyncAll(gomock.Any()).Return(map[string]*domain.FetchResult{
			"key-1": {RecordCount: 10, DatesProcessed: []string{"2024-03-01"}},
			"key-2": {RecordCount: 5, DatesProcessed: []string{"2024-03-01"}},
		}, nil),
	)

	service.syncAllKeys(context.Background())

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSalesSyncService_syncAllKeysSkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations registered: the guard must return before touching the
	// syncer at all.
	mockSyncer := syncmocks.NewMockSyncer(ctrl)

	service := &SalesSyncService{
		config:      SalesSyncConfig{SyncEnabled: true},
		syncer:      mockSyncer,
		syncRunning: true,
	}

	service.syncAllKeys(context.Background())

	assert.True(t, service.syncRunning)
}

func TestSalesSyncService_GetStatus(t *testing.T) {
	service := &SalesSyncService{
		config: SalesSyncConfig{
			CronSchedule:       "0 3 * * *",
			MaxConcurrentDates: 3,
			SyncEnabled:        true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 3, status["sync_max_concurrent"])
	assert.Equal(t, false, status["sync_running"])
}

func TestSalesSyncService_GetStatusDuringSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)
	mockSyncer.EXPECT().ResumePending(gomock.Any()).Return(nil)
	mockSyncer.EXPECT().SyncAll(gomock.Any()).Return(map[string]*domain.FetchResult{}, nil)

	service := &SalesSyncService{
		config: SalesSyncConfig{SyncEnabled: true},
		syncer: mockSyncer,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.syncAllKeys(context.Background())
	}()

	// Status reads must be safe while the sync goroutine updates its
	// bookkeeping; the race detector verifies the locking.
	for i := 0; i < 100; i++ {
		_ = service.GetStatus()
	}

	wg.Wait()
	assert.False(t, service.GetStatus()["sync_running"].(bool))
}

func TestCleanupService_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := repomocks.NewMockSalesRepository(ctrl)
	mockTasks := repomocks.NewMockSyncTaskRepository(ctrl)

	service := &CleanupService{
		config: CleanupConfig{RetentionDays: 90, Enabled: true},
		sales:  mockSales,
		tasks:  mockTasks,
	}

	gomock.InOrder(
		mockSales.EXPECT().DeleteOlderThan(90).Return(int64(12), nil),
		mockSales.EXPECT().DeleteDuplicateLogical().Return(int64(2), nil),
		mockTasks.EXPECT().ClearCompleted().Return(nil),
	)

	service.RunOnce()
}

func TestCleanupService_RunOnceSkipsRetentionWhenDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := repomocks.NewMockSalesRepository(ctrl)
	mockTasks := repomocks.NewMockSyncTaskRepository(ctrl)

	service := &CleanupService{
		config: CleanupConfig{RetentionDays: 0, Enabled: true},
		sales:  mockSales,
		tasks:  mockTasks,
	}

	mockSales.EXPECT().DeleteDuplicateLogical().Return(int64(0), nil)
	mockTasks.EXPECT().ClearCompleted().Return(nil)

	service.RunOnce()
}
