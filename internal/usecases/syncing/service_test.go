package syncing

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	steammocks "github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/mocks"
	keystoremocks "github.com/pdrosa/steam-sales-api/infrastructure/keystore/mocks"
	repomocks "github.com/pdrosa/steam-sales-api/infrastructure/repository/mocks"
	"github.com/pdrosa/steam-sales-api/internal/config"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

const (
	testKeyID  = "key-1"
	testSecret = "steam-api-key"
)

type fixture struct {
	service  Syncer
	steam    *steammocks.MockSteamIntegrator
	keys     *keystoremocks.MockStore
	keyRepo  *repomocks.MockAPIKeyRepository
	sales    *repomocks.MockSalesRepository
	tasks    *repomocks.MockSyncTaskRepository
	syncMeta *repomocks.MockSyncMetaRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		steam:    steammocks.NewMockSteamIntegrator(ctrl),
		keys:     keystoremocks.NewMockStore(ctrl),
		keyRepo:  repomocks.NewMockAPIKeyRepository(ctrl),
		sales:    repomocks.NewMockSalesRepository(ctrl),
		tasks:    repomocks.NewMockSyncTaskRepository(ctrl),
		syncMeta: repomocks.NewMockSyncMetaRepository(ctrl),
	}

	// MaxConcurrentDates of 1 keeps mock call ordering deterministic.
	cfg := &config.Config{}
	cfg.SalesSync.MaxConcurrentDates = 1

	f.service = NewService(cfg, f.steam, f.keys, f.keyRepo, f.sales, f.tasks, f.syncMeta)

	return f
}

func keyInfo() *domain.APIKeyInfo {
	return &domain.APIKeyInfo{ID: testKeyID, KeyHint: "-key"}
}

func TestSyncKey(t *testing.T) {
	f := newFixture(t)

	records := []domain.SalesRecord{{ID: "a"}, {ID: "b"}}

	f.keyRepo.EXPECT().GetByID(testKeyID).Return(keyInfo(), nil)
	f.keys.EXPECT().Get(testKeyID).Return(testSecret, nil)
	f.syncMeta.EXPECT().GetHighwatermark(testKeyID).Return(int64(10), nil)
	f.steam.EXPECT().FetchChangedDates(testSecret, int64(10)).
		Return([]string{"2024-03-01"}, int64(20), nil)
	f.sales.EXPECT().ExistingDates(testKeyID).Return(map[string]struct{}{}, nil)
	f.tasks.EXPECT().Replace(testKeyID, []string{"2024-03-01"}).Return(nil)

	taskID := domain.SyncTaskID(testKeyID, "2024-03-01")
	gomock.InOrder(
		f.tasks.EXPECT().MarkInProgress(taskID).Return(nil),
		f.steam.EXPECT().FetchSalesForDate(testSecret, testKeyID, "2024-03-01").
			Return(records, nil),
		f.sales.EXPECT().SaveBatch(records).Return(nil),
		f.tasks.EXPECT().MarkDone(taskID).Return(nil),
		// The highwatermark must move only after the date is stored.
		f.syncMeta.EXPECT().SetHighwatermark(testKeyID, int64(20)).Return(nil),
	)

	result, err := f.service.SyncKey(context.Background(), testKeyID)

	require.NoError(t, err)
	assert.EqualValues(t, 20, result.NewHighwatermark)
	assert.EqualValues(t, 2, result.RecordCount)
	assert.Equal(t, []string{"2024-03-01"}, result.DatesProcessed)
}

func TestSyncKeyNoChangedDates(t *testing.T) {
	f := newFixture(t)

	f.keyRepo.EXPECT().GetByID(testKeyID).Return(keyInfo(), nil)
	f.keys.EXPECT().Get(testKeyID).Return(testSecret, nil)
	f.syncMeta.EXPECT().GetHighwatermark(testKeyID).Return(int64(10), nil)
	f.steam.EXPECT().FetchChangedDates(testSecret, int64(10)).
		Return([]string{}, int64(10), nil)
	f.sales.EXPECT().ExistingDates(testKeyID).Return(map[string]struct{}{}, nil)

	result, err := f.service.SyncKey(context.Background(), testKeyID)

	require.NoError(t, err)
	assert.EqualValues(t, 10, result.NewHighwatermark)
	assert.Empty(t, result.DatesProcessed)
}

func TestSyncKeyUnknownKey(t *testing.T) {
	f := newFixture(t)

	f.keyRepo.EXPECT().GetByID(testKeyID).Return(nil, nil)

	result, err := f.service.SyncKey(context.Background(), testKeyID)

	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Nil(t, result)
}

func TestSyncKeySecretMissing(t *testing.T) {
	f := newFixture(t)

	f.keyRepo.EXPECT().GetByID(testKeyID).Return(keyInfo(), nil)
	f.keys.EXPECT().Get(testKeyID).Return("", nil)

	result, err := f.service.SyncKey(context.Background(), testKeyID)

	assert.ErrorIs(t, err, ErrSecretMissing)
	assert.Nil(t, result)
}

func TestSyncKeyKeepsHighwatermarkOnFetchFailure(t *testing.T) {
	f := newFixture(t)

	f.keyRepo.EXPECT().GetByID(testKeyID).Return(keyInfo(), nil)
	f.keys.EXPECT().Get(testKeyID).Return(testSecret, nil)
	f.syncMeta.EXPECT().GetHighwatermark(testKeyID).Return(int64(10), nil)
	f.steam.EXPECT().FetchChangedDates(testSecret, int64(10)).
		Return([]string{"2024-03-01"}, int64(20), nil)
	f.sales.EXPECT().ExistingDates(testKeyID).Return(map[string]struct{}{}, nil)
	f.tasks.EXPECT().Replace(testKeyID, []string{"2024-03-01"}).Return(nil)

	taskID := domain.SyncTaskID(testKeyID, "2024-03-01")
	f.tasks.EXPECT().MarkInProgress(taskID).Return(nil)
	f.steam.EXPECT().FetchSalesForDate(testSecret, testKeyID, "2024-03-01").
		Return(nil, errors.New("steam unavailable"))
	// SetHighwatermark must not be called; the controller verifies that.

	result, err := f.service.SyncKey(context.Background(), testKeyID)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestSyncAllContinuesPastFailingKey(t *testing.T) {
	f := newFixture(t)

	broken := &domain.APIKeyInfo{ID: "broken"}
	healthy := &domain.APIKeyInfo{ID: "healthy"}

	f.keyRepo.EXPECT().List().Return([]*domain.APIKeyInfo{broken, healthy}, nil)

	f.keyRepo.EXPECT().GetByID("broken").Return(broken, nil)
	f.keys.EXPECT().Get("broken").Return("", nil)

	f.keyRepo.EXPECT().GetByID("healthy").Return(healthy, nil)
	f.keys.EXPECT().Get("healthy").Return(testSecret, nil)
	f.syncMeta.EXPECT().GetHighwatermark("healthy").Return(int64(0), nil)
	f.steam.EXPECT().FetchChangedDates(testSecret, int64(0)).
		Return([]string{}, int64(0), nil)
	f.sales.EXPECT().ExistingDates("healthy").Return(map[string]struct{}{}, nil)

	results, err := f.service.SyncAll(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results, "healthy")
}

func TestResumePending(t *testing.T) {
	f := newFixture(t)

	f.tasks.EXPECT().Pending().Return([]*domain.SyncTask{
		{ID: domain.SyncTaskID(testKeyID, "2024-03-01"), APIKeyID: testKeyID, Date: "2024-03-01", Status: domain.SyncTaskStatusTodo},
	}, nil)
	f.keys.EXPECT().Get(testKeyID).Return(testSecret, nil)

	taskID := domain.SyncTaskID(testKeyID, "2024-03-01")
	gomock.InOrder(
		f.tasks.EXPECT().MarkInProgress(taskID).Return(nil),
		f.steam.EXPECT().FetchSalesForDate(testSecret, testKeyID, "2024-03-01").
			Return([]domain.SalesRecord{{ID: "a"}}, nil),
		f.sales.EXPECT().SaveBatch(gomock.Len(1)).Return(nil),
		f.tasks.EXPECT().MarkDone(taskID).Return(nil),
	)

	require.NoError(t, f.service.ResumePending(context.Background()))
}

func TestResumePendingNothingToDo(t *testing.T) {
	f := newFixture(t)

	f.tasks.EXPECT().Pending().Return(nil, nil)

	require.NoError(t, f.service.ResumePending(context.Background()))
}

func TestResetStalled(t *testing.T) {
	f := newFixture(t)

	f.tasks.EXPECT().ResetInProgress().Return(int64(2), nil)

	require.NoError(t, f.service.ResetStalled())
}

func TestSortDatesNewFirst(t *testing.T) {
	dates := []string{"2024-03-01", "2024-03-03", "2024-03-02", "2024-03-04"}
	existing := map[string]struct{}{
		"2024-03-01": {},
		"2024-03-03": {},
	}

	sortDatesNewFirst(dates, existing)

	// Never-seen dates first, chronological inside each group.
	assert.Equal(t, []string{"2024-03-02", "2024-03-04", "2024-03-01", "2024-03-03"}, dates)
}
