package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pdrosa/steam-sales-api/infrastructure/database/postgres"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

const salesTable = "sales"

// salesColumns is the canonical column order used by both the upsert and the
// row scans.
var salesColumns = []string{
	"id", "api_key_id", "date", "line_item_type",
	"partnerid", "primary_appid", "packageid", "bundleid", "appid", "game_item_id",
	"country_code", "platform", "currency",
	"base_price", "sale_price", "avg_sale_price_usd", "package_sale_type",
	"gross_units_sold", "gross_units_returned", "gross_units_activated", "net_units_sold",
	"gross_sales_usd", "gross_returns_usd", "net_sales_usd", "net_tax_usd",
	"combined_discount_id", "total_discount_percentage", "additional_revenue_share_tier",
	"key_request_id", "viw_grant_partnerid",
	"app_name", "package_name", "bundle_name", "partner_name", "country_name", "region",
	"game_item_description", "game_item_category", "key_request_notes",
	"game_code_description", "combined_discount_name",
	"app_id", "units_sold",
}

// saveBatchSize keeps each multi-row insert comfortably under the Postgres
// placeholder limit.
const saveBatchSize = 500

type SalesRepository interface {
	SaveBatch(records []domain.SalesRecord) error
	List(filters *domain.SalesFilters) ([]*domain.SalesRecord, error)
	ExistingDates(apiKeyID string) (map[string]struct{}, error)
	DeleteForKey(apiKeyID string) error
	DeleteForDate(apiKeyID, date string) error
	DeleteOlderThan(days int) (int64, error)
	DeleteDuplicateLogical() (int64, error)
	DeleteAll() error
	Stats(filters *domain.SalesFilters) (*domain.DashboardStats, error)
	DailySummaries(filters *domain.SalesFilters) ([]*domain.DailySummary, error)
	AppSummaries(filters *domain.SalesFilters) ([]*domain.AppSummary, error)
	CountrySummaries(filters *domain.SalesFilters) ([]*domain.CountrySummary, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// SaveBatch upserts records on their deterministic id, so re-fetching a date
// replaces what is already stored instead of duplicating it.
func (r *salesRepository) SaveBatch(records []domain.SalesRecord) error {
	for start := 0; start < len(records); start += saveBatchSize {
		end := start + saveBatchSize
		if end > len(records) {
			end = len(records)
		}

		if err := r.saveChunk(records[start:end]); err != nil {
			return err
		}
	}

	return nil
}

func (r *salesRepository) saveChunk(records []domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(salesTable).
		Columns(salesColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for i := range records {
		rec := &records[i]
		query = query.Values(
			rec.ID, rec.APIKeyID, rec.Date, rec.LineItemType,
			rec.PartnerID, rec.PrimaryAppID, rec.PackageID, rec.BundleID, rec.AppID, rec.GameItemID,
			rec.CountryCode, rec.Platform, rec.Currency,
			rec.BasePrice, rec.SalePrice, rec.AvgSalePriceUSD, rec.PackageSaleType,
			rec.GrossUnitsSold, rec.GrossUnitsReturned, rec.GrossUnitsActivated, rec.NetUnitsSold,
			rec.GrossSalesUSD, rec.GrossReturnsUSD, rec.NetSalesUSD, rec.NetTaxUSD,
			rec.CombinedDiscountID, rec.TotalDiscountPercentage, rec.AdditionalRevenueShareTier,
			rec.KeyRequestID, rec.VIWGrantPartnerID,
			rec.AppName, rec.PackageName, rec.BundleName, rec.PartnerName, rec.CountryName, rec.Region,
			rec.GameItemDescription, rec.GameItemCategory, rec.KeyRequestNotes,
			rec.GameCodeDescription, rec.CombinedDiscountName,
			rec.LegacyAppID, rec.LegacyUnitsSold,
		)
	}

	suffix := "ON CONFLICT (id) DO UPDATE SET "
	for i, col := range salesColumns {
		if col == "id" {
			continue
		}
		if i > 1 {
			suffix += ", "
		}
		suffix += fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}
	suffix += ", updated_at = NOW()"

	sqlQuery, args, err := query.Suffix(suffix).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *salesRepository) List(filters *domain.SalesFilters) ([]*domain.SalesRecord, error) {
	query := applySalesFilters(
		squirrel.Select(salesColumns...).
			From(salesTable).
			OrderBy("date DESC, id ASC").
			PlaceholderFormat(squirrel.Dollar),
		filters,
	)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SalesRecord, 0)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating rows: %w", err)
	}

	return records, nil
}

func (r *salesRepository) ExistingDates(apiKeyID string) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("DISTINCT date").
		From(salesTable).
		Where(squirrel.Eq{"api_key_id": apiKeyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]struct{})
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan date: %w", err)
		}
		dates[date] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating rows: %w", err)
	}

	return dates, nil
}

func (r *salesRepository) DeleteForKey(apiKeyID string) error {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"api_key_id": apiKeyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *salesRepository) DeleteForDate(apiKeyID, date string) error {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"api_key_id": apiKeyID, "date": date}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *salesRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected, nil
}

// DeleteDuplicateLogical removes records that share the same business key
// (date, app, package, country, credential), keeping the earliest insert.
// Historical imports produced such duplicates before ids were deterministic.
func (r *salesRepository) DeleteDuplicateLogical() (int64, error) {
	result, err := r.conn.Exec(`
		DELETE FROM sales
		WHERE ctid NOT IN (
			SELECT MIN(ctid)
			FROM sales
			GROUP BY date, app_id, packageid, country_code, api_key_id
		)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (r *salesRepository) DeleteAll() error {
	if _, err := r.conn.Exec("DELETE FROM sales"); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

func (r *salesRepository) Stats(filters *domain.SalesFilters) (*domain.DashboardStats, error) {
	query := applySalesFilters(
		squirrel.Select(
			"COALESCE(SUM(gross_sales_usd), 0)",
			"COALESCE(SUM(units_sold), 0)",
			"COALESCE(SUM(gross_returns_usd), 0)",
			"COUNT(*)",
			"COUNT(DISTINCT app_id)",
			"MIN(date)",
			"MAX(date)",
		).
			From(salesTable).
			PlaceholderFormat(squirrel.Dollar),
		filters,
	)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	stats := &domain.DashboardStats{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&stats.TotalRevenue,
		&stats.TotalUnits,
		&stats.TotalReturns,
		&stats.RecordCount,
		&stats.DistinctApps,
		&stats.FirstSaleDate,
		&stats.LastSaleDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan stats: %w", err)
	}

	return stats, nil
}

func (r *salesRepository) DailySummaries(filters *domain.SalesFilters) ([]*domain.DailySummary, error) {
	query := applySalesFilters(
		squirrel.Select(
			"date",
			"COALESCE(SUM(gross_sales_usd), 0)",
			"COALESCE(SUM(units_sold), 0)",
			"COUNT(*)",
		).
			From(salesTable).
			GroupBy("date").
			OrderBy("date ASC").
			PlaceholderFormat(squirrel.Dollar),
		filters,
	)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.DailySummary, 0)
	for rows.Next() {
		summary := &domain.DailySummary{}
		if err := rows.Scan(&summary.Date, &summary.Revenue, &summary.Units, &summary.RecordCount); err != nil {
			return nil, fmt.Errorf("failed to scan daily summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating rows: %w", err)
	}

	return summaries, nil
}

func (r *salesRepository) AppSummaries(filters *domain.SalesFilters) ([]*domain.AppSummary, error) {
	query := applySalesFilters(
		squirrel.Select(
			"app_id",
			"MAX(app_name)",
			"COALESCE(SUM(gross_sales_usd), 0)",
			"COALESCE(SUM(units_sold), 0)",
			"COUNT(*)",
		).
			From(salesTable).
			GroupBy("app_id").
			OrderBy("SUM(gross_sales_usd) DESC").
			PlaceholderFormat(squirrel.Dollar),
		filters,
	)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.AppSummary, 0)
	for rows.Next() {
		summary := &domain.AppSummary{}
		if err := rows.Scan(&summary.AppID, &summary.AppName, &summary.Revenue, &summary.Units, &summary.RecordCount); err != nil {
			return nil, fmt.Errorf("failed to scan app summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating rows: %w", err)
	}

	return summaries, nil
}

func (r *salesRepository) CountrySummaries(filters *domain.SalesFilters) ([]*domain.CountrySummary, error) {
	query := applySalesFilters(
		squirrel.Select(
			"country_code",
			"MAX(country_name)",
			"MAX(region)",
			"COALESCE(SUM(gross_sales_usd), 0)",
			"COALESCE(SUM(units_sold), 0)",
			"COUNT(*)",
		).
			From(salesTable).
			GroupBy("country_code").
			OrderBy("SUM(gross_sales_usd) DESC").
			PlaceholderFormat(squirrel.Dollar),
		filters,
	)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.CountrySummary, 0)
	for rows.Next() {
		summary := &domain.CountrySummary{}
		err := rows.Scan(
			&summary.CountryCode,
			&summary.CountryName,
			&summary.Region,
			&summary.Revenue,
			&summary.Units,
			&summary.RecordCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan country summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating rows: %w", err)
	}

	return summaries, nil
}

// applySalesFilters narrows a sales query by the optional filters.
func applySalesFilters(query squirrel.SelectBuilder, filters *domain.SalesFilters) squirrel.SelectBuilder {
	if filters == nil {
		return query
	}

	if filters.StartDate != nil {
		query = query.Where(squirrel.GtOrEq{"date": filters.StartDate.Format(time.DateOnly)})
	}
	if filters.EndDate != nil {
		query = query.Where(squirrel.LtOrEq{"date": filters.EndDate.Format(time.DateOnly)})
	}
	if filters.AppID != nil {
		query = query.Where(squirrel.Eq{"app_id": *filters.AppID})
	}
	if filters.CountryCode != nil {
		query = query.Where(squirrel.Eq{"country_code": *filters.CountryCode})
	}
	if filters.APIKeyID != nil {
		query = query.Where(squirrel.Eq{"api_key_id": *filters.APIKeyID})
	}

	return query
}

func scanSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}

	err := rows.Scan(
		&record.ID, &record.APIKeyID, &record.Date, &record.LineItemType,
		&record.PartnerID, &record.PrimaryAppID, &record.PackageID, &record.BundleID,
		&record.AppID, &record.GameItemID,
		&record.CountryCode, &record.Platform, &record.Currency,
		&record.BasePrice, &record.SalePrice, &record.AvgSalePriceUSD, &record.PackageSaleType,
		&record.GrossUnitsSold, &record.GrossUnitsReturned, &record.GrossUnitsActivated, &record.NetUnitsSold,
		&record.GrossSalesUSD, &record.GrossReturnsUSD, &record.NetSalesUSD, &record.NetTaxUSD,
		&record.CombinedDiscountID, &record.TotalDiscountPercentage, &record.AdditionalRevenueShareTier,
		&record.KeyRequestID, &record.VIWGrantPartnerID,
		&record.AppName, &record.PackageName, &record.BundleName, &record.PartnerName,
		&record.CountryName, &record.Region,
		&record.GameItemDescription, &record.GameItemCategory, &record.KeyRequestNotes,
		&record.GameCodeDescription, &record.CombinedDiscountName,
		&record.LegacyAppID, &record.LegacyUnitsSold,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
