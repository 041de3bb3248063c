package steam

import (
	"strconv"

	steamdomain "github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/domain"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

// gameItemKey is the composite key of the game-item lookup: microtransaction
// items are only unique within their app.
type gameItemKey struct {
	AppID      int64
	GameItemID int64
}

type countryEntry struct {
	Name   string
	Region string
}

type gameItemEntry struct {
	Description string
	Category    string
}

type keyRequestEntry struct {
	Notes               string
	GameCodeDescription string
}

// lookupTables are the response-scoped id→name mappings built from the
// auxiliary arrays of a single GetDetailedSales page. They are rebuilt for
// every response and never shared across calls, so an id missing from the
// current page always resolves to "unknown" rather than to a stale entry.
type lookupTables struct {
	appNames          map[int64]string
	packageNames      map[int64]string
	bundleNames       map[int64]string
	partnerNames      map[int64]string
	countries         map[string]countryEntry
	gameItems         map[gameItemKey]gameItemEntry
	keyRequests       map[int64]keyRequestEntry
	combinedDiscounts map[int64]string
}

// buildLookupTables indexes the auxiliary arrays of one response body.
// Missing arrays are treated as empty. A duplicated id keeps the last entry
// seen (plain map assignment in order), matching the upstream behavior that
// downstream consumers already rely on.
func buildLookupTables(body *steamdomain.DetailedSalesBody) *lookupTables {
	tables := &lookupTables{
		appNames:          make(map[int64]string, len(body.AppInfo)),
		packageNames:      make(map[int64]string, len(body.PackageInfo)),
		bundleNames:       make(map[int64]string, len(body.BundleInfo)),
		partnerNames:      make(map[int64]string, len(body.PartnerInfo)),
		countries:         make(map[string]countryEntry, len(body.CountryInfo)),
		gameItems:         make(map[gameItemKey]gameItemEntry, len(body.GameItemInfo)),
		keyRequests:       make(map[int64]keyRequestEntry, len(body.KeyRequestInfo)),
		combinedDiscounts: make(map[int64]string, len(body.CombinedDiscountInfo)),
	}

	for _, app := range body.AppInfo {
		tables.appNames[app.AppID] = app.AppName
	}
	for _, pkg := range body.PackageInfo {
		tables.packageNames[pkg.PackageID] = pkg.PackageName
	}
	for _, bundle := range body.BundleInfo {
		tables.bundleNames[bundle.BundleID] = bundle.BundleName
	}
	for _, partner := range body.PartnerInfo {
		tables.partnerNames[partner.PartnerID] = partner.PartnerName
	}
	for _, country := range body.CountryInfo {
		tables.countries[country.CountryCode] = countryEntry{
			Name:   country.CountryName,
			Region: country.Region,
		}
	}
	for _, gameItem := range body.GameItemInfo {
		key := gameItemKey{AppID: gameItem.AppID, GameItemID: gameItem.GameItemID}
		tables.gameItems[key] = gameItemEntry{
			Description: gameItem.GameItemDescription,
			Category:    gameItem.GameItemCategory,
		}
	}
	for _, keyRequest := range body.KeyRequestInfo {
		tables.keyRequests[keyRequest.KeyRequestID] = keyRequestEntry{
			Notes:               keyRequest.KeyRequestNotes,
			GameCodeDescription: keyRequest.GameCodeDescription,
		}
	}
	for _, discount := range body.CombinedDiscountInfo {
		tables.combinedDiscounts[discount.CombinedDiscountID] = discount.CombinedDiscountName
	}

	return tables
}

// normalizeLineItem converts one raw line item into a SalesRecord using the
// lookup tables of its parent response. Absent optional fields stay absent in
// the output; this never fails for structurally valid input.
func normalizeLineItem(item *steamdomain.LineItem, apiKeyID string, tables *lookupTables) domain.SalesRecord {
	// Own primary_appid wins, then appid, then 0. The resolved value feeds
	// both the app-name lookup and the legacy appId field.
	primaryAppID := int64(0)
	if item.PrimaryAppID != nil {
		primaryAppID = *item.PrimaryAppID
	} else if item.AppID != nil {
		primaryAppID = *item.AppID
	}

	// Different line-item types populate different unit fields; the first
	// populated one in this order wins.
	unitsSold := int64(0)
	switch {
	case item.NetUnitsSold != nil:
		unitsSold = *item.NetUnitsSold
	case item.GrossUnitsSold != nil:
		unitsSold = *item.GrossUnitsSold
	case item.GrossUnitsActivated != nil:
		unitsSold = *item.GrossUnitsActivated
	}

	record := domain.SalesRecord{
		APIKeyID:     apiKeyID,
		Date:         item.Date,
		LineItemType: item.LineItemType,
		PartnerID:    item.PartnerID,
		PrimaryAppID: int64Ptr(primaryAppID),
		PackageID:    item.PackageID,
		BundleID:     item.BundleID,
		AppID:        item.AppID,
		GameItemID:   item.GameItemID,

		CountryCode: item.CountryCode,
		Platform:    item.Platform,
		Currency:    item.Currency,

		BasePrice:       item.BasePrice,
		SalePrice:       item.SalePrice,
		AvgSalePriceUSD: item.AvgSalePriceUSD,
		PackageSaleType: item.PackageSaleType,

		GrossUnitsSold:      item.GrossUnitsSold,
		GrossUnitsReturned:  item.GrossUnitsReturned,
		GrossUnitsActivated: item.GrossUnitsActivated,
		NetUnitsSold:        item.NetUnitsSold,

		GrossSalesUSD:   float64Ptr(parseUSD(item.GrossSalesUSD)),
		GrossReturnsUSD: float64Ptr(parseUSD(item.GrossReturnsUSD)),
		NetSalesUSD:     float64Ptr(parseUSD(item.NetSalesUSD)),
		NetTaxUSD:       float64Ptr(parseUSD(item.NetTaxUSD)),

		CombinedDiscountID:         item.CombinedDiscountID,
		TotalDiscountPercentage:    item.TotalDiscountPercentage,
		AdditionalRevenueShareTier: item.AdditionalRevenueShareTier,
		KeyRequestID:               item.KeyRequestID,
		VIWGrantPartnerID:          item.VIWGrantPartnerID,

		LegacyAppID:     primaryAppID,
		LegacyUnitsSold: unitsSold,
	}

	if name, ok := tables.appNames[primaryAppID]; ok {
		record.AppName = stringPtr(name)
	}
	if item.PackageID != nil && *item.PackageID != 0 {
		if name, ok := tables.packageNames[*item.PackageID]; ok {
			record.PackageName = stringPtr(name)
		}
	}
	if item.BundleID != nil && *item.BundleID != 0 {
		if name, ok := tables.bundleNames[*item.BundleID]; ok {
			record.BundleName = stringPtr(name)
		}
	}
	if item.PartnerID != nil && *item.PartnerID != 0 {
		if name, ok := tables.partnerNames[*item.PartnerID]; ok {
			record.PartnerName = stringPtr(name)
		}
	}
	if country, ok := tables.countries[item.CountryCode]; ok {
		record.CountryName = stringPtr(country.Name)
		record.Region = stringPtr(country.Region)
	}
	// The composite key exists only when the item references both sides.
	if item.AppID != nil && item.GameItemID != nil {
		key := gameItemKey{AppID: *item.AppID, GameItemID: *item.GameItemID}
		if gameItem, ok := tables.gameItems[key]; ok {
			record.GameItemDescription = stringPtr(gameItem.Description)
			record.GameItemCategory = stringPtr(gameItem.Category)
		}
	}
	if item.KeyRequestID != nil && *item.KeyRequestID != 0 {
		if keyRequest, ok := tables.keyRequests[*item.KeyRequestID]; ok {
			record.KeyRequestNotes = stringPtr(keyRequest.Notes)
			record.GameCodeDescription = stringPtr(keyRequest.GameCodeDescription)
		}
	}
	if item.CombinedDiscountID != nil && *item.CombinedDiscountID != 0 {
		if name, ok := tables.combinedDiscounts[*item.CombinedDiscountID]; ok {
			record.CombinedDiscountName = stringPtr(name)
		}
	}

	record.ID = record.UniqueKey()

	return record
}

// TransformResponse converts one GetDetailedSales response into the flat
// sequence of sales records for every result, in input order. An empty or
// absent results array returns an empty slice without touching the auxiliary
// arrays, which therefore do not need to be well-formed in that case.
func TransformResponse(resp *steamdomain.DetailedSalesResponse, apiKeyID string) []domain.SalesRecord {
	results := resp.Response.Results
	if len(results) == 0 {
		return []domain.SalesRecord{}
	}

	tables := buildLookupTables(&resp.Response)

	records := make([]domain.SalesRecord, 0, len(results))
	for i := range results {
		records = append(records, normalizeLineItem(&results[i], apiKeyID, tables))
	}

	return records
}

// ParseMaxID reads the pagination cursor Steam returns with each sales page.
// A missing, empty or non-numeric cursor collapses to 0.
func ParseMaxID(maxID *string) int64 {
	if maxID == nil || *maxID == "" {
		return 0
	}

	value, err := strconv.ParseInt(*maxID, 10, 64)
	if err != nil {
		return 0
	}

	return value
}

// parseUSD parses a decimal-string revenue field, defaulting to 0 when the
// field is absent or unparseable.
func parseUSD(value *string) float64 {
	if value == nil {
		return 0
	}

	parsed, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		return 0
	}

	return parsed
}

func int64Ptr(v int64) *int64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
