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

const detailedSalesEndpoint = "IPartnerFinancialsService/GetDetailedSales/v1"

// GetDetailedSales fetches one page of sale line items for a single date.
// The highwatermark id selects the page; callers loop until max_id stops
// advancing.
func (c *SteamClient) GetDetailedSales(apiKey, date string, highwatermarkID int64) (*steamdomain.DetailedSalesResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait interrupted: %w", err)
	}

	endpoint, err := url.Parse(c.config.Steam.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Steam base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, detailedSalesEndpoint)

	query := endpoint.Query()
	query.Set("key", apiKey)
	query.Set("date", date)
	query.Set("highwatermark_id", strconv.FormatInt(highwatermarkID, 10))
	if c.config.Steam.PageBatchSize > 0 {
		query.Set("max_results", strconv.Itoa(c.config.Steam.PageBatchSize))
	}
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
		return nil, fmt.Errorf("detailed sales request failed with status: %s", resp.Status)
	}

	response := &steamdomain.DetailedSalesResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("failed to decode detailed sales response: %w", err)
	}

	return response, nil
}
