package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesFiltersFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/v1/sales?start_date=2024-03-01&end_date=2024-03-31&app_id=10&country_code=US&api_key_id=key-1", nil)

	filters, err := salesFiltersFromQuery(req)

	require.NoError(t, err)
	require.NotNil(t, filters.StartDate)
	assert.Equal(t, "2024-03-01", filters.StartDate.Format("2006-01-02"))
	require.NotNil(t, filters.EndDate)
	assert.Equal(t, "2024-03-31", filters.EndDate.Format("2006-01-02"))
	require.NotNil(t, filters.AppID)
	assert.EqualValues(t, 10, *filters.AppID)
	require.NotNil(t, filters.CountryCode)
	assert.Equal(t, "US", *filters.CountryCode)
	require.NotNil(t, filters.APIKeyID)
	assert.Equal(t, "key-1", *filters.APIKeyID)
}

func TestSalesFiltersFromQueryEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/sales", nil)

	filters, err := salesFiltersFromQuery(req)

	require.NoError(t, err)
	assert.Nil(t, filters.StartDate)
	assert.Nil(t, filters.EndDate)
	assert.Nil(t, filters.AppID)
	assert.Nil(t, filters.CountryCode)
	assert.Nil(t, filters.APIKeyID)
}

func TestSalesFiltersFromQueryInvalidValues(t *testing.T) {
	for _, query := range []string{"start_date=bogus", "end_date=03/01/2024", "app_id=ten"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/sales?"+query, nil)

		_, err := salesFiltersFromQuery(req)

		assert.Error(t, err, "query %q should be rejected", query)
	}
}
