package steamclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	steamdomain "github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/domain"
)

const changedDatesEndpoint = "IPartnerFinancialsService/GetChangedDatesForPartner/v1"

// GetChangedDates lists the reporting dates whose data changed since the
// submitted highwatermark.
func (c *SteamClient) GetChangedDates(apiKey string, highwatermark int64) (*steamdomain.ChangedDatesResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait interrupted: %w", err)
	}

	endpoint, err := url.Parse(c.config.Steam.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Steam base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, changedDatesEndpoint)

	query := endpoint.Query()
	query.Set("key", apiKey)
	query.Set("highwatermark", strconv.FormatInt(highwatermark, 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("changed dates request failed with status: %s", resp.Status)
	}

	response := &steamdomain.ChangedDatesResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("failed to decode changed dates response: %w", err)
	}

	return response, nil
}
