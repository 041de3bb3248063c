package reporting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	repomocks "github.com/pdrosa/steam-sales-api/infrastructure/repository/mocks"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

func newService(t *testing.T) (Reporter, *repomocks.MockSalesRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sales := repomocks.NewMockSalesRepository(ctrl)

	return NewService(sales), sales
}

func TestStatsRoundsRevenues(t *testing.T) {
	service, sales := newService(t)

	sales.EXPECT().Stats(gomock.Any()).Return(&domain.DashboardStats{
		TotalRevenue: 1234.56789,
		TotalReturns: 10.006,
		TotalUnits:   100,
	}, nil)

	stats, err := service.Stats(&domain.SalesFilters{})

	require.NoError(t, err)
	assert.InDelta(t, 1234.57, stats.TotalRevenue, 0.0001)
	assert.InDelta(t, 10.01, stats.TotalReturns, 0.0001)
	assert.EqualValues(t, 100, stats.TotalUnits)
}

func TestDailySummariesRoundsRevenue(t *testing.T) {
	service, sales := newService(t)

	sales.EXPECT().DailySummaries(gomock.Any()).Return([]*domain.DailySummary{
		{Date: "2024-03-01", Revenue: 99.999, Units: 10},
	}, nil)

	summaries, err := service.DailySummaries(&domain.SalesFilters{})

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 100.0, summaries[0].Revenue, 0.0001)
}

func TestExportXLSX(t *testing.T) {
	service, sales := newService(t)

	appName := "Game A"
	gross := 29.97
	sales.EXPECT().List(gomock.Any()).Return([]*domain.SalesRecord{
		{
			Date:            "2024-03-01",
			LineItemType:    "Sale",
			CountryCode:     "US",
			AppName:         &appName,
			GrossSalesUSD:   &gross,
			LegacyAppID:     10,
			LegacyUnitsSold: 3,
		},
	}, nil)

	data, err := service.ExportXLSX(&domain.SalesFilters{})

	require.NoError(t, err)
	require.NotEmpty(t, data)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2024-03-01", rows[1][0])
	assert.Equal(t, "Game A", rows[1][2])
}

func TestExportXLSXEmpty(t *testing.T) {
	service, sales := newService(t)

	sales.EXPECT().List(gomock.Any()).Return(nil, nil)

	data, err := service.ExportXLSX(&domain.SalesFilters{})

	require.NoError(t, err)
	require.NotEmpty(t, data)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
