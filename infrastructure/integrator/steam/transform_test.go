package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	steamdomain "github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/domain"
)

const testKeyID = "key-1"

func saleLineItem() steamdomain.LineItem {
	return steamdomain.LineItem{
		Date:         "2024-03-01",
		LineItemType: "Sale",
		PartnerID:    int64Ptr(900),
		PrimaryAppID: int64Ptr(10),
		PackageID:    int64Ptr(55),
		CountryCode:  "US",
		Platform:     stringPtr("windows"),
		Currency:     stringPtr("USD"),
		NetUnitsSold: int64Ptr(3),
		GrossSalesUSD: stringPtr("29.97"),
		NetSalesUSD:   stringPtr("25.47"),
	}
}

func salesResponse(items ...steamdomain.LineItem) *steamdomain.DetailedSalesResponse {
	return &steamdomain.DetailedSalesResponse{
		Response: steamdomain.DetailedSalesBody{
			Results: items,
			AppInfo: []steamdomain.AppInfo{
				{AppID: 10, AppName: "Game A"},
				{AppID: 20, AppName: "Game B"},
			},
			PackageInfo: []steamdomain.PackageInfo{
				{PackageID: 55, PackageName: "Game A Deluxe"},
			},
			PartnerInfo: []steamdomain.PartnerInfo{
				{PartnerID: 900, PartnerName: "Studio"},
			},
			CountryInfo: []steamdomain.CountryInfo{
				{CountryCode: "US", CountryName: "United States", Region: "North America"},
			},
			GameItemInfo: []steamdomain.GameItemInfo{
				{AppID: 10, GameItemID: 7, GameItemDescription: "Hat", GameItemCategory: "Cosmetic"},
			},
			KeyRequestInfo: []steamdomain.KeyRequestInfo{
				{KeyRequestID: 42, KeyRequestNotes: "Press batch", GameCodeDescription: "Game A retail"},
			},
			CombinedDiscountInfo: []steamdomain.CombinedDiscountInfo{
				{CombinedDiscountID: 3, CombinedDiscountName: "Summer Sale"},
			},
		},
	}
}

func TestTransformResponseEmptyResults(t *testing.T) {
	records := TransformResponse(&steamdomain.DetailedSalesResponse{}, testKeyID)

	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestTransformResponsePreservesOrderAndLength(t *testing.T) {
	first := saleLineItem()
	second := saleLineItem()
	second.CountryCode = "DE"
	third := saleLineItem()
	third.CountryCode = "JP"

	records := TransformResponse(salesResponse(first, second, third), testKeyID)

	require.Len(t, records, 3)
	assert.Equal(t, "US", records[0].CountryCode)
	assert.Equal(t, "DE", records[1].CountryCode)
	assert.Equal(t, "JP", records[2].CountryCode)
}

func TestTransformResponseIsDeterministic(t *testing.T) {
	resp := salesResponse(saleLineItem())

	first := TransformResponse(resp, testKeyID)
	second := TransformResponse(resp, testKeyID)

	assert.Equal(t, first, second)
}

func TestNormalizePrimaryAppResolution(t *testing.T) {
	tests := []struct {
		name         string
		primaryAppID *int64
		appID        *int64
		want         int64
	}{
		{"primary appid wins", int64Ptr(10), int64Ptr(20), 10},
		{"falls back to appid", nil, int64Ptr(20), 20},
		{"defaults to zero", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := saleLineItem()
			item.PrimaryAppID = tt.primaryAppID
			item.AppID = tt.appID

			records := TransformResponse(salesResponse(item), testKeyID)

			require.Len(t, records, 1)
			require.NotNil(t, records[0].PrimaryAppID)
			assert.Equal(t, tt.want, *records[0].PrimaryAppID)
			assert.Equal(t, tt.want, records[0].LegacyAppID)
		})
	}
}

func TestNormalizeAppNameUsesResolvedPrimaryApp(t *testing.T) {
	item := saleLineItem()
	item.PrimaryAppID = nil
	item.AppID = int64Ptr(20)

	records := TransformResponse(salesResponse(item), testKeyID)

	require.Len(t, records, 1)
	require.NotNil(t, records[0].AppName)
	assert.Equal(t, "Game B", *records[0].AppName)
}

func TestNormalizeUnitsFallback(t *testing.T) {
	tests := []struct {
		name      string
		net       *int64
		gross     *int64
		activated *int64
		want      int64
	}{
		{"net units win", int64Ptr(3), int64Ptr(9), int64Ptr(1), 3},
		{"gross units second", nil, int64Ptr(9), int64Ptr(1), 9},
		{"activations last", nil, nil, int64Ptr(7), 7},
		{"all absent means zero", nil, nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := saleLineItem()
			item.NetUnitsSold = tt.net
			item.GrossUnitsSold = tt.gross
			item.GrossUnitsActivated = tt.activated

			records := TransformResponse(salesResponse(item), testKeyID)

			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].LegacyUnitsSold)
		})
	}
}

func TestNormalizeRevenueParsing(t *testing.T) {
	item := saleLineItem()
	item.GrossSalesUSD = stringPtr("123.45")
	item.NetSalesUSD = nil
	item.GrossReturnsUSD = stringPtr("not-a-number")

	records := TransformResponse(salesResponse(item), testKeyID)

	require.Len(t, records, 1)
	record := records[0]

	require.NotNil(t, record.GrossSalesUSD)
	assert.InDelta(t, 123.45, *record.GrossSalesUSD, 0.0001)

	// Absent and unparseable values both collapse to 0, never nil.
	require.NotNil(t, record.NetSalesUSD)
	assert.Zero(t, *record.NetSalesUSD)
	require.NotNil(t, record.GrossReturnsUSD)
	assert.Zero(t, *record.GrossReturnsUSD)
}

func TestNormalizeLookupResolution(t *testing.T) {
	item := saleLineItem()
	item.AppID = int64Ptr(10)
	item.GameItemID = int64Ptr(7)
	item.KeyRequestID = int64Ptr(42)
	item.CombinedDiscountID = int64Ptr(3)

	records := TransformResponse(salesResponse(item), testKeyID)

	require.Len(t, records, 1)
	record := records[0]

	require.NotNil(t, record.AppName)
	assert.Equal(t, "Game A", *record.AppName)
	require.NotNil(t, record.PackageName)
	assert.Equal(t, "Game A Deluxe", *record.PackageName)
	require.NotNil(t, record.PartnerName)
	assert.Equal(t, "Studio", *record.PartnerName)
	require.NotNil(t, record.CountryName)
	assert.Equal(t, "United States", *record.CountryName)
	require.NotNil(t, record.Region)
	assert.Equal(t, "North America", *record.Region)
	require.NotNil(t, record.GameItemDescription)
	assert.Equal(t, "Hat", *record.GameItemDescription)
	require.NotNil(t, record.KeyRequestNotes)
	assert.Equal(t, "Press batch", *record.KeyRequestNotes)
	require.NotNil(t, record.CombinedDiscountName)
	assert.Equal(t, "Summer Sale", *record.CombinedDiscountName)
}

func TestNormalizeSkipsLookupsForAbsentOrZeroIDs(t *testing.T) {
	item := saleLineItem()
	item.PackageID = int64Ptr(0)
	item.BundleID = nil
	item.PartnerID = nil
	item.KeyRequestID = int64Ptr(0)
	item.CombinedDiscountID = nil

	records := TransformResponse(salesResponse(item), testKeyID)

	require.Len(t, records, 1)
	record := records[0]

	assert.Nil(t, record.PackageName)
	assert.Nil(t, record.BundleName)
	assert.Nil(t, record.PartnerName)
	assert.Nil(t, record.KeyRequestNotes)
	assert.Nil(t, record.CombinedDiscountName)
}

func TestNormalizeGameItemNeedsBothIDs(t *testing.T) {
	item := saleLineItem()
	item.AppID = int64Ptr(10)
	item.GameItemID = nil

	records := TransformResponse(salesResponse(item), testKeyID)

	require.Len(t, records, 1)
	assert.Nil(t, records[0].GameItemDescription)

	item.GameItemID = int64Ptr(999) // no table entry for this pair
	records = TransformResponse(salesResponse(item), testKeyID)

	require.Len(t, records, 1)
	assert.Nil(t, records[0].GameItemDescription)
}

func TestBuildLookupTablesDuplicateKeepsLast(t *testing.T) {
	body := &steamdomain.DetailedSalesBody{
		AppInfo: []steamdomain.AppInfo{
			{AppID: 10, AppName: "Old Name"},
			{AppID: 10, AppName: "New Name"},
		},
	}

	tables := buildLookupTables(body)

	assert.Equal(t, "New Name", tables.appNames[10])
}

func TestNormalizeSetsDeterministicID(t *testing.T) {
	records := TransformResponse(salesResponse(saleLineItem()), testKeyID)

	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].ID)
	assert.Equal(t, records[0].UniqueKey(), records[0].ID)
}

func TestParseMaxID(t *testing.T) {
	assert.EqualValues(t, 0, ParseMaxID(nil))
	assert.EqualValues(t, 0, ParseMaxID(stringPtr("")))
	assert.EqualValues(t, 0, ParseMaxID(stringPtr("abc")))
	assert.EqualValues(t, 42, ParseMaxID(stringPtr("42")))
	assert.EqualValues(t, 9007199254740993, ParseMaxID(stringPtr("9007199254740993")))
}
