package domain

// DashboardStats are the headline numbers shown at the top of the dashboard.
type DashboardStats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalUnits    int64   `json:"totalUnits"`
	TotalReturns  float64 `json:"totalReturns"`
	RecordCount   int64   `json:"recordCount"`
	DistinctApps  int64   `json:"distinctApps"`
	FirstSaleDate *string `json:"firstSaleDate,omitempty"`
	LastSaleDate  *string `json:"lastSaleDate,omitempty"`
}

// DailySummary is one point of the revenue-over-time chart.
type DailySummary struct {
	Date        string  `json:"date"`
	Revenue     float64 `json:"revenue"`
	Units       int64   `json:"units"`
	RecordCount int64   `json:"recordCount"`
}

// AppSummary is one row of the per-app breakdown chart.
type AppSummary struct {
	AppID       int64   `json:"appId"`
	AppName     *string `json:"appName,omitempty"`
	Revenue     float64 `json:"revenue"`
	Units       int64   `json:"units"`
	RecordCount int64   `json:"recordCount"`
}

// CountrySummary is one row of the per-country breakdown chart.
type CountrySummary struct {
	CountryCode string  `json:"countryCode"`
	CountryName *string `json:"countryName,omitempty"`
	Region      *string `json:"region,omitempty"`
	Revenue     float64 `json:"revenue"`
	Units       int64   `json:"units"`
	RecordCount int64   `json:"recordCount"`
}
