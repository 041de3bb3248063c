package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/pdrosa/steam-sales-api/internal/scheduler"
	"github.com/pdrosa/steam-sales-api/pkg/apiErrors"
	"github.com/pdrosa/steam-sales-api/pkg/log"
)

const (
	CronJobTypeSales   = "sales"
	CronJobTypeCleanup = "cleanup"
	CronJobTypeAll     = "all"
)

// CronJobServices holds the schedulers that can be run on demand.
type CronJobServices struct {
	SalesSyncService *scheduler.SalesSyncService
	CleanupService   *scheduler.CleanupService
}

// RunCronJob runs a scheduled job outside its cron window.
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: manual run requested")

		switch cronType {
		case CronJobTypeSales:
			if services.SalesSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sales sync service not available", nil)
				return
			}
			services.SalesSyncService.TriggerManualSync()

		case CronJobTypeCleanup:
			if services.CleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cleanup service not available", nil)
				return
			}
			go services.CleanupService.RunOnce()

		case CronJobTypeAll:
			if services.SalesSyncService != nil {
				services.SalesSyncService.TriggerManualSync()
			}
			if services.CleanupService != nil {
				go services.CleanupService.RunOnce()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Unknown cron job type", map[string]string{
				"type": cronType,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"type":   cronType,
		})
	})
}
