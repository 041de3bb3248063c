package keymanaging

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	keystoremocks "github.com/pdrosa/steam-sales-api/infrastructure/keystore/mocks"
	repomocks "github.com/pdrosa/steam-sales-api/infrastructure/repository/mocks"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

type fixture struct {
	service  KeyManager
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
		keys:     keystoremocks.NewMockStore(ctrl),
		keyRepo:  repomocks.NewMockAPIKeyRepository(ctrl),
		sales:    repomocks.NewMockSalesRepository(ctrl),
		tasks:    repomocks.NewMockSyncTaskRepository(ctrl),
		syncMeta: repomocks.NewMockSyncMetaRepository(ctrl),
	}

	f.service = NewService(f.keys, f.keyRepo, f.sales, f.tasks, f.syncMeta)

	return f
}

func TestAdd(t *testing.T) {
	f := newFixture(t)

	var storedID string
	f.keys.EXPECT().Add(gomock.Any(), "steam-api-key-9f3c").
		DoAndReturn(func(id, _ string) error {
			storedID = id
			return nil
		})
	f.keyRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(info *domain.APIKeyInfo) error {
			assert.Equal(t, storedID, info.ID)
			assert.Equal(t, "9f3c", info.KeyHint)
			assert.NotZero(t, info.CreatedAt)
			return nil
		})

	name := "main account"
	info, err := f.service.Add("  steam-api-key-9f3c  ", &name)

	require.NoError(t, err)
	require.NotNil(t, info.DisplayName)
	assert.Equal(t, "main account", *info.DisplayName)
}

func TestAddEmptyKey(t *testing.T) {
	f := newFixture(t)

	info, err := f.service.Add("   ", nil)

	assert.ErrorIs(t, err, ErrEmptyAPIKey)
	assert.Nil(t, info)
}

func TestAddShortKeyHintKeepsWholeKey(t *testing.T) {
	f := newFixture(t)

	f.keys.EXPECT().Add(gomock.Any(), "abc").Return(nil)
	f.keyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	info, err := f.service.Add("abc", nil)

	require.NoError(t, err)
	assert.Equal(t, "abc", info.KeyHint)
}

func TestAddRollsBackSecretWhenMetadataFails(t *testing.T) {
	f := newFixture(t)

	var storedID string
	gomock.InOrder(
		f.keys.EXPECT().Add(gomock.Any(), "steam-api-key").
			DoAndReturn(func(id, _ string) error {
				storedID = id
				return nil
			}),
		f.keyRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db down")),
		f.keys.EXPECT().Delete(gomock.Any()).
			DoAndReturn(func(id string) error {
				assert.Equal(t, storedID, id)
				return nil
			}),
	)

	info, err := f.service.Add("steam-api-key", nil)

	require.Error(t, err)
	assert.Nil(t, info)
}

func TestRename(t *testing.T) {
	f := newFixture(t)

	f.keyRepo.EXPECT().GetByID("key-1").Return(&domain.APIKeyInfo{ID: "key-1"}, nil)
	f.keyRepo.EXPECT().UpdateDisplayName("key-1", "renamed").Return(nil)

	require.NoError(t, f.service.Rename("key-1", "  renamed  "))
}

func TestRenameUnknownKey(t *testing.T) {
	f := newFixture(t)

	f.keyRepo.EXPECT().GetByID("missing").Return(nil, nil)

	assert.ErrorIs(t, f.service.Rename("missing", "name"), ErrKeyNotFound)
}

func TestRenameEmptyName(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.service.Rename("key-1", "   "), ErrEmptyKeyName)
}

func TestDeleteCascades(t *testing.T) {
	f := newFixture(t)

	f.keyRepo.EXPECT().GetByID("key-1").Return(&domain.APIKeyInfo{ID: "key-1"}, nil)
	gomock.InOrder(
		f.sales.EXPECT().DeleteForKey("key-1").Return(nil),
		f.tasks.EXPECT().DeleteForKey("key-1").Return(nil),
		f.syncMeta.EXPECT().DeleteHighwatermark("key-1").Return(nil),
		f.keys.EXPECT().Delete("key-1").Return(nil),
		f.keyRepo.EXPECT().Delete("key-1").Return(nil),
	)

	require.NoError(t, f.service.Delete("key-1"))
}

func TestDeleteUnknownKey(t *testing.T) {
	f := newFixture(t)

	f.keyRepo.EXPECT().GetByID("missing").Return(nil, nil)

	assert.ErrorIs(t, f.service.Delete("missing"), ErrKeyNotFound)
}

func TestClearAll(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.sales.EXPECT().DeleteAll().Return(nil),
		f.tasks.EXPECT().DeleteAll().Return(nil),
		f.syncMeta.EXPECT().DeleteAllHighwatermarks().Return(nil),
		f.keys.EXPECT().DeleteAll().Return(nil),
		f.keyRepo.EXPECT().DeleteAll().Return(nil),
	)

	require.NoError(t, f.service.ClearAll())
}
