package keymanaging

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pdrosa/steam-sales-api/infrastructure/keystore"
	"github.com/pdrosa/steam-sales-api/infrastructure/repository"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

var (
	ErrEmptyAPIKey  = errors.New("api key must not be empty")
	ErrKeyNotFound  = errors.New("api key not found")
	ErrEmptyKeyName = errors.New("display name must not be empty")
)

// KeyManager manages Steam partner API keys. Secrets go to the encrypted
// keystore; everything queryable stays in the database.
type KeyManager interface {
	Add(apiKey string, displayName *string) (*domain.APIKeyInfo, error)
	List() ([]*domain.APIKeyInfo, error)
	Rename(id, displayName string) error
	Delete(id string) error
	ClearAll() error
}

type Service struct {
	keys     keystore.Store
	keyRepo  repository.APIKeyRepository
	sales    repository.SalesRepository
	tasks    repository.SyncTaskRepository
	syncMeta repository.SyncMetaRepository
}

func NewService(
	keys keystore.Store,
	keyRepo repository.APIKeyRepository,
	sales repository.SalesRepository,
	tasks repository.SyncTaskRepository,
	syncMeta repository.SyncMetaRepository,
) KeyManager {
	return &Service{
		keys:     keys,
		keyRepo:  keyRepo,
		sales:    sales,
		tasks:    tasks,
		syncMeta: syncMeta,
	}
}

func (s *Service) Add(apiKey string, displayName *string) (*domain.APIKeyInfo, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	info := &domain.APIKeyInfo{
		ID:          uuid.New().String(),
		DisplayName: displayName,
		KeyHint:     keyHint(apiKey),
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := s.keys.Add(info.ID, apiKey); err != nil {
		return nil, errors.Wrap(err, "failed to store api key secret")
	}

	if err := s.keyRepo.Create(info); err != nil {
		// Roll the secret back so the keystore does not accumulate orphans.
		if delErr := s.keys.Delete(info.ID); delErr != nil {
			logrus.WithError(delErr).Error("failed to roll back keystore entry")
		}
		return nil, errors.Wrap(err, "failed to persist api key metadata")
	}

	return info, nil
}

func (s *Service) List() ([]*domain.APIKeyInfo, error) {
	return s.keyRepo.List()
}

func (s *Service) Rename(id, displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return ErrEmptyKeyName
	}

	info, err := s.keyRepo.GetByID(id)
	if err != nil {
		return err
	}
	if info == nil {
		return ErrKeyNotFound
	}

	return s.keyRepo.UpdateDisplayName(id, displayName)
}

// Delete removes a key and everything derived from it: its sales rows, its
// sync tasks, its highwatermark and its keystore secret.
func (s *Service) Delete(id string) error {
	info, err := s.keyRepo.GetByID(id)
	if err != nil {
		return err
	}
	if info == nil {
		return ErrKeyNotFound
	}

	if err := s.sales.DeleteForKey(id); err != nil {
		return errors.Wrap(err, "failed to delete sales for key")
	}

	if err := s.tasks.DeleteForKey(id); err != nil {
		return errors.Wrap(err, "failed to delete sync tasks for key")
	}

	if err := s.syncMeta.DeleteHighwatermark(id); err != nil {
		return errors.Wrap(err, "failed to delete highwatermark for key")
	}

	if err := s.keys.Delete(id); err != nil {
		return errors.Wrap(err, "failed to delete api key secret")
	}

	if err := s.keyRepo.Delete(id); err != nil {
		return errors.Wrap(err, "failed to delete api key metadata")
	}

	logrus.WithField("api_key_id", id).Info("api key and derived data removed")

	return nil
}

// ClearAll wipes all sales data, sync state and stored keys.
func (s *Service) ClearAll() error {
	if err := s.sales.DeleteAll(); err != nil {
		return errors.Wrap(err, "failed to clear sales")
	}

	if err := s.tasks.DeleteAll(); err != nil {
		return errors.Wrap(err, "failed to clear sync tasks")
	}

	if err := s.syncMeta.DeleteAllHighwatermarks(); err != nil {
		return errors.Wrap(err, "failed to clear highwatermarks")
	}

	if err := s.keys.DeleteAll(); err != nil {
		return errors.Wrap(err, "failed to clear keystore")
	}

	if err := s.keyRepo.DeleteAll(); err != nil {
		return errors.Wrap(err, "failed to clear api key metadata")
	}

	logrus.Warn("all sales data and api keys cleared")

	return nil
}

func keyHint(apiKey string) string {
	if len(apiKey) <= 4 {
		return apiKey
	}
	return apiKey[len(apiKey)-4:]
}
