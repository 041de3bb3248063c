package steamdomain

import jsoniter "github.com/json-iterator/go"

// DetailedSalesResponse is the envelope of
// IPartnerFinancialsService/GetDetailedSales/v1.
type DetailedSalesResponse struct {
	Response DetailedSalesBody `json:"response"`
}

// DetailedSalesBody carries one page of sale line items plus the auxiliary
// lookup arrays that accompany every page. All auxiliary arrays are optional.
type DetailedSalesBody struct {
	Results              []LineItem             `json:"results"`
	MaxID                *string                `json:"max_id"`
	AppInfo              []AppInfo              `json:"app_info"`
	PackageInfo          []PackageInfo          `json:"package_info"`
	BundleInfo           []BundleInfo           `json:"bundle_info"`
	PartnerInfo          []PartnerInfo          `json:"partner_info"`
	CountryInfo          []CountryInfo          `json:"country_info"`
	GameItemInfo         []GameItemInfo         `json:"game_item_info"`
	KeyRequestInfo       []KeyRequestInfo       `json:"key_request_info"`
	CombinedDiscountInfo []CombinedDiscountInfo `json:"combined_discount_info"`
}

// LineItem is one raw sale/return/activation row as Steam reports it.
// Revenue fields arrive as decimal strings; everything except date,
// line_item_type and country_code is optional.
type LineItem struct {
	ID                         *int64   `json:"id"`
	Date                       string   `json:"date"`
	LineItemType               string   `json:"line_item_type"`
	PartnerID                  *int64   `json:"partnerid"`
	PrimaryAppID               *int64   `json:"primary_appid"`
	PackageID                  *int64   `json:"packageid"`
	BundleID                   *int64   `json:"bundleid"`
	AppID                      *int64   `json:"appid"`
	GameItemID                 *int64   `json:"game_item_id"`
	CountryCode                string   `json:"country_code"`
	Platform                   *string  `json:"platform"`
	Currency                   *string  `json:"currency"`
	BasePrice                  *string  `json:"base_price"`
	SalePrice                  *string  `json:"sale_price"`
	AvgSalePriceUSD            *string  `json:"avg_sale_price_usd"`
	PackageSaleType            *string  `json:"package_sale_type"`
	GrossUnitsSold             *int64   `json:"gross_units_sold"`
	GrossUnitsReturned         *int64   `json:"gross_units_returned"`
	GrossUnitsActivated        *int64   `json:"gross_units_activated"`
	NetUnitsSold               *int64   `json:"net_units_sold"`
	GrossSalesUSD              *string  `json:"gross_sales_usd"`
	GrossReturnsUSD            *string  `json:"gross_returns_usd"`
	NetSalesUSD                *string  `json:"net_sales_usd"`
	NetTaxUSD                  *string  `json:"net_tax_usd"`
	CombinedDiscountID         *int64   `json:"combined_discount_id"`
	TotalDiscountPercentage    *float64 `json:"total_discount_percentage"`
	AdditionalRevenueShareTier *int64   `json:"additional_revenue_share_tier"`
	KeyRequestID               *int64   `json:"key_request_id"`
	VIWGrantPartnerID          *int64   `json:"viw_grant_partnerid"`
}

type AppInfo struct {
	AppID   int64  `json:"appid"`
	AppName string `json:"app_name"`
}

type PackageInfo struct {
	PackageID   int64  `json:"packageid"`
	PackageName string `json:"package_name"`
}

type BundleInfo struct {
	BundleID   int64  `json:"bundleid"`
	BundleName string `json:"bundle_name"`
}

type PartnerInfo struct {
	PartnerID   int64  `json:"partnerid"`
	PartnerName string `json:"partner_name"`
}

type CountryInfo struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Region      string `json:"region"`
}

type GameItemInfo struct {
	AppID               int64  `json:"appid"`
	GameItemID          int64  `json:"game_item_id"`
	GameItemDescription string `json:"game_item_description"`
	GameItemCategory    string `json:"game_item_category"`
}

type KeyRequestInfo struct {
	KeyRequestID             int64  `json:"key_request_id"`
	KeyRequestNotes          string `json:"key_request_notes"`
	GameCodeID               int64  `json:"game_code_id"`
	GameCodeDescription      string `json:"game_code_description"`
	TerritoryCodeID          int64  `json:"territory_code_id"`
	TerritoryCodeDescription string `json:"territory_code_description"`
}

type CombinedDiscountInfo struct {
	CombinedDiscountID      int64   `json:"combined_discount_id"`
	CombinedDiscountName    string  `json:"combined_discount_name"`
	TotalDiscountPercentage float64 `json:"total_discount_percentage"`
	DiscountIDs             []int64 `json:"discount_ids"`
}

// ChangedDatesResponse is the envelope of
// IPartnerFinancialsService/GetChangedDatesForPartner/v1.
type ChangedDatesResponse struct {
	Response ChangedDatesBody `json:"response"`
}

// ChangedDatesBody lists the dates whose data changed since the submitted
// highwatermark. Steam has been observed returning result_highwatermark as
// either a JSON string or a number, so it is kept raw and coerced later.
type ChangedDatesBody struct {
	Dates               []string            `json:"dates"`
	ResultHighwatermark jsoniter.RawMessage `json:"result_highwatermark"`
}
