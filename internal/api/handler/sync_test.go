package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pdrosa/steam-sales-api/internal/domain"
	"github.com/pdrosa/steam-sales-api/internal/usecases/syncing"
	syncmocks "github.com/pdrosa/steam-sales-api/internal/usecases/syncing/mocks"
)

func requestWithParams(method, path string, params httprouter.Params) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
	return req.WithContext(ctx)
}

func TestRunKeySync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)
	mockSyncer.EXPECT().SyncKey(gomock.Any(), "key-1").
		Return(&domain.FetchResult{
			NewHighwatermark: 20,
			RecordCount:      7,
			DatesProcessed:   []string{"2024-03-01"},
		}, nil)

	recorder := httptest.NewRecorder()
	req := requestWithParams(http.MethodPost, "/v1/keys/key-1/sync",
		httprouter.Params{{Key: "id", Value: "key-1"}})

	RunKeySync(SyncServices{Syncer: mockSyncer}).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var result domain.FetchResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.EqualValues(t, 20, result.NewHighwatermark)
	assert.EqualValues(t, 7, result.RecordCount)
}

func TestRunKeySyncUnknownKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)
	mockSyncer.EXPECT().SyncKey(gomock.Any(), "missing").
		Return(nil, syncing.ErrKeyNotFound)

	recorder := httptest.NewRecorder()
	req := requestWithParams(http.MethodPost, "/v1/keys/missing/sync",
		httprouter.Params{{Key: "id", Value: "missing"}})

	RunKeySync(SyncServices{Syncer: mockSyncer}).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "KEY_001")
}

func TestRunKeySyncSecretMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)
	mockSyncer.EXPECT().SyncKey(gomock.Any(), "key-1").
		Return(nil, syncing.ErrSecretMissing)

	recorder := httptest.NewRecorder()
	req := requestWithParams(http.MethodPost, "/v1/keys/key-1/sync",
		httprouter.Params{{Key: "id", Value: "key-1"}})

	RunKeySync(SyncServices{Syncer: mockSyncer}).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SRV_004")
}

func TestGetSyncTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)
	mockSyncer.EXPECT().PendingTasks().Return([]*domain.SyncTask{
		{
			ID:       domain.SyncTaskID("key-1", "2024-03-01"),
			APIKeyID: "key-1",
			Date:     "2024-03-01",
			Status:   domain.SyncTaskStatusTodo,
		},
	}, nil)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/sync/tasks", nil)

	GetSyncTasks(SyncServices{Syncer: mockSyncer}).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var tasks []*domain.SyncTask
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "key-1|2024-03-01", tasks[0].ID)
}

func TestRunCronJobUnknownType(t *testing.T) {
	recorder := httptest.NewRecorder()
	req := requestWithParams(http.MethodPost, "/v1/cron/bogus/run",
		httprouter.Params{{Key: "type", Value: "bogus"}})

	RunCronJob(CronJobServices{}).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_001")
}

func TestRunCronJobSalesServiceUnavailable(t *testing.T) {
	recorder := httptest.NewRecorder()
	req := requestWithParams(http.MethodPost, "/v1/cron/sales/run",
		httprouter.Params{{Key: "type", Value: "sales"}})

	RunCronJob(CronJobServices{}).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
