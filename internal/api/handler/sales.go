package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pdrosa/steam-sales-api/internal/domain"
	"github.com/pdrosa/steam-sales-api/internal/usecases/reporting"
	"github.com/pdrosa/steam-sales-api/pkg/apiErrors"
	"github.com/pdrosa/steam-sales-api/pkg/log"
	"github.com/pdrosa/steam-sales-api/pkg/utils"
)

func ListSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := salesFiltersFromQuery(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("sales: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		records, err := service.ListSales(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("sales: failed to list records")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list sales", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	})
}

func GetStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := salesFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		stats, err := service.Stats(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("sales: failed to compute stats")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to compute stats", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	})
}

func GetDailySummaries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := salesFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summaries, err := service.DailySummaries(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("sales: failed to build daily summaries")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build daily summaries", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaries)
	})
}

func GetAppSummaries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := salesFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summaries, err := service.AppSummaries(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("sales: failed to build app summaries")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build app summaries", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaries)
	})
}

func GetCountrySummaries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := salesFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summaries, err := service.CountrySummaries(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("sales: failed to build country summaries")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build country summaries", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaries)
	})
}

// ExportSales streams the filtered sales as an XLSX workbook.
func ExportSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := salesFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		workbook, err := service.ExportXLSX(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("sales: failed to build export")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to build export", nil)
			return
		}

		filename := fmt.Sprintf("steam-sales-%s.xlsx", time.Now().Format(time.DateOnly))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Write(workbook)
	})
}

// salesFiltersFromQuery parses the shared filter query parameters.
func salesFiltersFromQuery(r *http.Request) (*domain.SalesFilters, error) {
	filters := &domain.SalesFilters{}
	query := r.URL.Query()

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date: %w", err)
		}
		filters.StartDate = startDate
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date: %w", err)
		}
		filters.EndDate = endDate
	}

	if raw := query.Get("app_id"); raw != "" {
		appID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid app_id: %w", err)
		}
		filters.AppID = &appID
	}

	if raw := query.Get("country_code"); raw != "" {
		filters.CountryCode = &raw
	}

	if raw := query.Get("api_key_id"); raw != "" {
		filters.APIKeyID = &raw
	}

	return filters, nil
}
