package steamclient

import (
	"net/http"
	"time"

	steamdomain "github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/domain"
	"github.com/pdrosa/steam-sales-api/internal/config"
	"golang.org/x/time/rate"
)

type Client interface {
	GetDetailedSales(apiKey, date string, highwatermarkID int64) (*steamdomain.DetailedSalesResponse, error)
	GetChangedDates(apiKey string, highwatermark int64) (*steamdomain.ChangedDatesResponse, error)
}

type SteamClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	config     *config.Config
}

// NewClient creates a partner financials API client. All requests go through
// a shared rate limiter so paginated fetches stay under Steam's per-key
// request budget.
func NewClient(cfg *config.Config) Client {
	rps := cfg.Steam.RateLimitRPS
	if rps <= 0 {
		rps = 1
	}

	return &SteamClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		config:  cfg,
	}
}
