package steam_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam"
	steamdomain "github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/domain"
	"github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/steamclient/mocks"
	"github.com/pdrosa/steam-sales-api/internal/config"
)

const (
	testAPIKey   = "secret"
	testAPIKeyID = "key-1"
	testDate     = "2024-03-01"
)

func newService(t *testing.T) (steam.SteamIntegrator, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	return steam.New(&config.Config{}, client), client
}

func salesPage(maxID string, itemCount int) *steamdomain.DetailedSalesResponse {
	items := make([]steamdomain.LineItem, itemCount)
	for i := range items {
		items[i] = steamdomain.LineItem{
			Date:         testDate,
			LineItemType: "Sale",
			CountryCode:  "US",
		}
	}

	resp := &steamdomain.DetailedSalesResponse{
		Response: steamdomain.DetailedSalesBody{Results: items},
	}
	if maxID != "" {
		resp.Response.MaxID = &maxID
	}

	return resp
}

func TestFetchSalesForDateSinglePage(t *testing.T) {
	service, client := newService(t)

	client.EXPECT().
		GetDetailedSales(testAPIKey, testDate, int64(0)).
		Return(salesPage("", 2), nil)

	records, err := service.FetchSalesForDate(testAPIKey, testAPIKeyID, testDate)

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFetchSalesForDatePaginates(t *testing.T) {
	service, client := newService(t)

	gomock.InOrder(
		client.EXPECT().
			GetDetailedSales(testAPIKey, testDate, int64(0)).
			Return(salesPage("100", 2), nil),
		client.EXPECT().
			GetDetailedSales(testAPIKey, testDate, int64(100)).
			Return(salesPage("200", 1), nil),
		client.EXPECT().
			GetDetailedSales(testAPIKey, testDate, int64(200)).
			Return(salesPage("200", 0), nil),
	)

	records, err := service.FetchSalesForDate(testAPIKey, testAPIKeyID, testDate)

	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestFetchSalesForDateStopsWhenCursorDoesNotAdvance(t *testing.T) {
	service, client := newService(t)

	// A page that repeats the cursor it was asked for must terminate the loop
	// even when it still carries results.
	client.EXPECT().
		GetDetailedSales(testAPIKey, testDate, int64(0)).
		Return(salesPage("0", 5), nil)

	records, err := service.FetchSalesForDate(testAPIKey, testAPIKeyID, testDate)

	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestFetchSalesForDatePropagatesClientError(t *testing.T) {
	service, client := newService(t)

	client.EXPECT().
		GetDetailedSales(testAPIKey, testDate, int64(0)).
		Return(nil, errors.New("steam unavailable"))

	records, err := service.FetchSalesForDate(testAPIKey, testAPIKeyID, testDate)

	require.Error(t, err)
	assert.Nil(t, records)
}

func TestFetchChangedDates(t *testing.T) {
	tests := []struct {
		name              string
		rawHighwatermark  string
		wantHighwatermark int64
	}{
		{"string highwatermark", `"150"`, 150},
		{"numeric highwatermark", `150`, 150},
		{"string zero", `"0"`, 0},
		{"corrupt value keeps stored cursor", `"not-a-number"`, 42},
		{"absent value keeps stored cursor", ``, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client := newService(t)

			resp := &steamdomain.ChangedDatesResponse{
				Response: steamdomain.ChangedDatesBody{
					Dates: []string{"2024-03-01", "2024-03-02"},
				},
			}
			if tt.rawHighwatermark != "" {
				resp.Response.ResultHighwatermark = []byte(tt.rawHighwatermark)
			}

			client.EXPECT().
				GetChangedDates(testAPIKey, int64(42)).
				Return(resp, nil)

			dates, highwatermark, err := service.FetchChangedDates(testAPIKey, 42)

			require.NoError(t, err)
			assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, dates)
			assert.Equal(t, tt.wantHighwatermark, highwatermark)
		})
	}
}

func TestFetchChangedDatesPropagatesClientError(t *testing.T) {
	service, client := newService(t)

	client.EXPECT().
		GetChangedDates(testAPIKey, int64(42)).
		Return(nil, errors.New("steam unavailable"))

	dates, highwatermark, err := service.FetchChangedDates(testAPIKey, 42)

	require.Error(t, err)
	assert.Nil(t, dates)
	assert.EqualValues(t, 42, highwatermark)
}
