package steam

import (
	"github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/steamclient"
	"github.com/pdrosa/steam-sales-api/internal/config"
	"github.com/pdrosa/steam-sales-api/internal/domain"
	"github.com/sirupsen/logrus"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SteamIntegrator interface {
	FetchChangedDates(apiKey string, storedHighwatermark int64) ([]string, int64, error)
	FetchSalesForDate(apiKey, apiKeyID, date string) ([]domain.SalesRecord, error)
}

type SteamService struct {
	cfg    *config.Config
	Client steamclient.Client
}

func New(cfg *config.Config, client steamclient.Client) SteamIntegrator {
	return &SteamService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchChangedDates returns the reporting dates with changed data since the
// stored highwatermark, plus the new highwatermark to persist once those
// dates have been processed. Steam returns the highwatermark as either a
// string or a number; an unreadable value falls back to the stored one so a
// bad response never moves the cursor forward.
func (s *SteamService) FetchChangedDates(apiKey string, storedHighwatermark int64) ([]string, int64, error) {
	resp, err := s.Client.GetChangedDates(apiKey, storedHighwatermark)
	if err != nil {
		return nil, storedHighwatermark, err
	}

	newHighwatermark := coerceHighwatermark(resp.Response.ResultHighwatermark, storedHighwatermark)

	return resp.Response.Dates, newHighwatermark, nil
}

// FetchSalesForDate pages through GetDetailedSales for a single date and
// returns every normalized record in the order Steam reported them. Each page
// is transformed with its own lookup tables.
func (s *SteamService) FetchSalesForDate(apiKey, apiKeyID, date string) ([]domain.SalesRecord, error) {
	dateSales := make([]domain.SalesRecord, 0)

	var pageHighwatermark int64
	hasMore := true

	for hasMore {
		resp, err := s.Client.GetDetailedSales(apiKey, date, pageHighwatermark)
		if err != nil {
			return nil, err
		}

		maxID := ParseMaxID(resp.Response.MaxID)
		records := TransformResponse(resp, apiKeyID)
		dateSales = append(dateSales, records...)

		logrus.WithFields(logrus.Fields{
			"date":          date,
			"page_max_id":   maxID,
			"page_records":  len(records),
			"total_records": len(dateSales),
		}).Debug("steam: fetched detailed sales page")

		hasMore = maxID > pageHighwatermark && len(resp.Response.Results) > 0
		pageHighwatermark = maxID
	}

	return dateSales, nil
}

// coerceHighwatermark reads the flexible result_highwatermark field.
func coerceHighwatermark(raw jsoniter.RawMessage, fallback int64) int64 {
	if len(raw) == 0 {
		return fallback
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		parsed := ParseMaxID(&asString)
		if parsed == 0 && asString != "0" {
			return fallback
		}
		return parsed
	}

	var asNumber int64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber
	}

	return fallback
}
