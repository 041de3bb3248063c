package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/pdrosa/steam-sales-api/internal/scheduler"
	"github.com/pdrosa/steam-sales-api/internal/usecases/syncing"
	"github.com/pdrosa/steam-sales-api/pkg/apiErrors"
	"github.com/pdrosa/steam-sales-api/pkg/log"
)

// SyncServices bundles what the sync endpoints need.
type SyncServices struct {
	SalesSyncService *scheduler.SalesSyncService
	Syncer           syncing.Syncer
}

// RunSync triggers a manual sync of every key outside the cron schedule.
func RunSync(services SyncServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if services.SalesSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sync service not available", nil)
			return
		}

		logger.Info("sync: manual run requested")
		services.SalesSyncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
		})
	})
}

// RunKeySync fetches changed dates for a single credential and waits for the
// result, so the dashboard can show what a newly added key pulled in.
func RunKeySync(services SyncServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "API key id is required", nil)
			return
		}

		logger.WithField("api_key_id", id).Info("sync: manual run requested for key")

		result, err := services.Syncer.SyncKey(r.Context(), id)
		if err != nil {
			logger.WithField("error", err.Error()).Error("sync: manual key run failed")

			switch {
			case errors.Is(err, syncing.ErrKeyNotFound):
				apiErrors.WriteError(w, apiErrors.ErrAPIKeyNotFound, "API key not found", nil)
			case errors.Is(err, syncing.ErrSecretMissing):
				apiErrors.WriteError(w, apiErrors.ErrKeystore, "API key secret is missing", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sync failed", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

// GetSyncTasks lists the open queue entries.
func GetSyncTasks(services SyncServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tasks, err := services.Syncer.PendingTasks()
		if err != nil {
			logger.WithField("error", err.Error()).Error("sync: failed to list pending tasks")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to list sync tasks", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tasks)
	})
}

// GetSyncStatus reports the scheduler state plus the pending task counts.
func GetSyncStatus(services SyncServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if services.SalesSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sync service not available", nil)
			return
		}

		status := services.SalesSyncService.GetStatus()

		if services.Syncer != nil {
			pending, err := services.Syncer.PendingCounts()
			if err != nil {
				logger.WithField("error", err.Error()).Error("sync: failed to count pending tasks")
			} else {
				status["pending_tasks"] = pending
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})
}
