package domain

import (
	"fmt"
	"strings"
	"time"
)

// SalesRecord is one normalized sales line item, enriched with the friendly
// names resolved from the response lookup tables. Records are immutable once
// built; the persistence layer owns their lifecycle from there.
type SalesRecord struct {
	ID string `json:"id,omitempty"`

	// Credential association
	APIKeyID string `json:"apiKeyId"`

	// Core identifiers
	Date          string `json:"date"`
	LineItemType  string `json:"lineItemType"`
	PartnerID     *int64 `json:"partnerid,omitempty"`
	PrimaryAppID  *int64 `json:"primaryAppid,omitempty"`
	PackageID     *int64 `json:"packageid,omitempty"`
	BundleID      *int64 `json:"bundleid,omitempty"`
	AppID         *int64 `json:"appid,omitempty"`
	GameItemID    *int64 `json:"gameItemId,omitempty"`

	// Location & platform
	CountryCode string  `json:"countryCode"`
	Platform    *string `json:"platform,omitempty"`
	Currency    *string `json:"currency,omitempty"`

	// Pricing
	BasePrice       *string `json:"basePrice,omitempty"`
	SalePrice       *string `json:"salePrice,omitempty"`
	AvgSalePriceUSD *string `json:"avgSalePriceUsd,omitempty"`
	PackageSaleType *string `json:"packageSaleType,omitempty"`

	// Units
	GrossUnitsSold      *int64 `json:"grossUnitsSold,omitempty"`
	GrossUnitsReturned  *int64 `json:"grossUnitsReturned,omitempty"`
	GrossUnitsActivated *int64 `json:"grossUnitsActivated,omitempty"`
	NetUnitsSold        *int64 `json:"netUnitsSold,omitempty"`

	// Revenue (USD)
	GrossSalesUSD   *float64 `json:"grossSalesUsd,omitempty"`
	GrossReturnsUSD *float64 `json:"grossReturnsUsd,omitempty"`
	NetSalesUSD     *float64 `json:"netSalesUsd,omitempty"`
	NetTaxUSD       *float64 `json:"netTaxUsd,omitempty"`

	// Discounts & revenue share
	CombinedDiscountID         *int64   `json:"combinedDiscountId,omitempty"`
	TotalDiscountPercentage    *float64 `json:"totalDiscountPercentage,omitempty"`
	AdditionalRevenueShareTier *int64   `json:"additionalRevenueShareTier,omitempty"`
	KeyRequestID               *int64   `json:"keyRequestId,omitempty"`
	VIWGrantPartnerID          *int64   `json:"viwGrantPartnerid,omitempty"`

	// Resolved lookup names
	AppName              *string `json:"appName,omitempty"`
	PackageName          *string `json:"packageName,omitempty"`
	BundleName           *string `json:"bundleName,omitempty"`
	PartnerName          *string `json:"partnerName,omitempty"`
	CountryName          *string `json:"countryName,omitempty"`
	Region               *string `json:"region,omitempty"`
	GameItemDescription  *string `json:"gameItemDescription,omitempty"`
	GameItemCategory     *string `json:"gameItemCategory,omitempty"`
	KeyRequestNotes      *string `json:"keyRequestNotes,omitempty"`
	GameCodeDescription  *string `json:"gameCodeDescription,omitempty"`
	CombinedDiscountName *string `json:"combinedDiscountName,omitempty"`

	// Legacy duplicate fields kept for existing chart consumers. Both always
	// carry the same value as the canonical resolution above.
	LegacyAppID     int64 `json:"appId"`
	LegacyUnitsSold int64 `json:"unitsSold"`
}

// UniqueKey builds the deterministic record identity from Steam's identifying
// fields, pipe-joined in a fixed order. Used as the persistence primary key so
// re-fetched pages upsert instead of duplicating.
func (r *SalesRecord) UniqueKey() string {
	var b strings.Builder

	// Always-present fields
	writeOptInt(&b, r.PartnerID)
	b.WriteString(r.Date)
	b.WriteByte('|')
	b.WriteString(r.LineItemType)
	b.WriteByte('|')
	writeOptString(&b, r.Platform)
	b.WriteString(r.CountryCode)
	b.WriteByte('|')
	writeOptString(&b, r.Currency)
	b.WriteString(r.APIKeyID)
	b.WriteByte('|')

	// Package-specific fields
	writeOptInt(&b, r.PackageID)
	writeOptInt(&b, r.BundleID)
	writeOptString(&b, r.PackageSaleType)
	writeOptInt(&b, r.KeyRequestID)
	writeOptString(&b, r.BasePrice)
	writeOptString(&b, r.SalePrice)

	// Microtransaction-specific fields
	writeOptInt(&b, r.AppID)
	writeOptInt(&b, r.GameItemID)

	// Optional trailing field, no separator after it
	if r.CombinedDiscountID != nil {
		fmt.Fprintf(&b, "%d", *r.CombinedDiscountID)
	}

	return b.String()
}

func writeOptInt(b *strings.Builder, v *int64) {
	if v != nil {
		fmt.Fprintf(b, "%d", *v)
	}
	b.WriteByte('|')
}

func writeOptString(b *strings.Builder, v *string) {
	if v != nil {
		b.WriteString(*v)
	}
	b.WriteByte('|')
}

// SalesFilters narrows sales queries for listing, summaries and export.
type SalesFilters struct {
	StartDate   *time.Time
	EndDate     *time.Time
	AppID       *int64
	CountryCode *string
	APIKeyID    *string
}

// FetchResult summarizes one sync run for a credential.
type FetchResult struct {
	NewHighwatermark int64    `json:"newHighwatermark"`
	RecordCount      int64    `json:"recordCount"`
	DatesProcessed   []string `json:"datesProcessed"`
}
