package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/pdrosa/steam-sales-api/internal/usecases/keymanaging"
	"github.com/pdrosa/steam-sales-api/pkg/apiErrors"
	"github.com/pdrosa/steam-sales-api/pkg/log"
)

type AddAPIKeyRequest struct {
	APIKey      string  `json:"api_key"`
	DisplayName *string `json:"display_name,omitempty"`
}

type RenameAPIKeyRequest struct {
	DisplayName string `json:"display_name"`
}

func ListAPIKeys(service keymanaging.KeyManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		keys, err := service.List()
		if err != nil {
			logger.WithField("error", err.Error()).Error("keys: failed to list api keys")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list api keys", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(keys)
	})
}

func AddAPIKey(service keymanaging.KeyManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req AddAPIKeyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		info, err := service.Add(req.APIKey, req.DisplayName)
		if err != nil {
			if errors.Is(err, keymanaging.ErrEmptyAPIKey) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "api_key is required", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("keys: failed to add api key")
			apiErrors.WriteError(w, apiErrors.ErrKeystore, "Failed to store api key", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(info)
	})
}

func RenameAPIKey(service keymanaging.KeyManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req RenameAPIKeyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if err := service.Rename(id, req.DisplayName); err != nil {
			switch {
			case errors.Is(err, keymanaging.ErrKeyNotFound):
				apiErrors.WriteError(w, apiErrors.ErrAPIKeyNotFound, "API key not found", nil)
			case errors.Is(err, keymanaging.ErrEmptyKeyName):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "display_name is required", nil)
			default:
				logger.WithField("error", err.Error()).Error("keys: failed to rename api key")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to rename api key", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteAPIKey(service keymanaging.KeyManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(id); err != nil {
			if errors.Is(err, keymanaging.ErrKeyNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrAPIKeyNotFound, "API key not found", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("keys: failed to delete api key")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to delete api key", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ClearAllData wipes every stored sale, sync state and api key.
func ClearAllData(service keymanaging.KeyManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Warn("keys: clearing all stored data")

		if err := service.ClearAll(); err != nil {
			logger.WithField("error", err.Error()).Error("keys: failed to clear data")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to clear data", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
