package reporting

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/pdrosa/steam-sales-api/infrastructure/repository"
	"github.com/pdrosa/steam-sales-api/internal/domain"
	"github.com/pdrosa/steam-sales-api/pkg/utils"
)

// Reporter serves the dashboard: filtered record listings, headline stats,
// the chart aggregations and a spreadsheet export of the same data.
type Reporter interface {
	ListSales(filters *domain.SalesFilters) ([]*domain.SalesRecord, error)
	Stats(filters *domain.SalesFilters) (*domain.DashboardStats, error)
	DailySummaries(filters *domain.SalesFilters) ([]*domain.DailySummary, error)
	AppSummaries(filters *domain.SalesFilters) ([]*domain.AppSummary, error)
	CountrySummaries(filters *domain.SalesFilters) ([]*domain.CountrySummary, error)
	ExportXLSX(filters *domain.SalesFilters) ([]byte, error)
}

type Service struct {
	sales repository.SalesRepository
}

func NewService(sales repository.SalesRepository) Reporter {
	return &Service{
		sales: sales,
	}
}

func (s *Service) ListSales(filters *domain.SalesFilters) ([]*domain.SalesRecord, error) {
	return s.sales.List(filters)
}

func (s *Service) Stats(filters *domain.SalesFilters) (*domain.DashboardStats, error) {
	stats, err := s.sales.Stats(filters)
	if err != nil {
		return nil, err
	}

	stats.TotalRevenue = utils.RoundWithTwoDecimalPlace(stats.TotalRevenue)
	stats.TotalReturns = utils.RoundWithTwoDecimalPlace(stats.TotalReturns)

	return stats, nil
}

func (s *Service) DailySummaries(filters *domain.SalesFilters) ([]*domain.DailySummary, error) {
	summaries, err := s.sales.DailySummaries(filters)
	if err != nil {
		return nil, err
	}

	for _, summary := range summaries {
		summary.Revenue = utils.RoundWithTwoDecimalPlace(summary.Revenue)
	}

	return summaries, nil
}

func (s *Service) AppSummaries(filters *domain.SalesFilters) ([]*domain.AppSummary, error) {
	summaries, err := s.sales.AppSummaries(filters)
	if err != nil {
		return nil, err
	}

	for _, summary := range summaries {
		summary.Revenue = utils.RoundWithTwoDecimalPlace(summary.Revenue)
	}

	return summaries, nil
}

func (s *Service) CountrySummaries(filters *domain.SalesFilters) ([]*domain.CountrySummary, error) {
	summaries, err := s.sales.CountrySummaries(filters)
	if err != nil {
		return nil, err
	}

	for _, summary := range summaries {
		summary.Revenue = utils.RoundWithTwoDecimalPlace(summary.Revenue)
	}

	return summaries, nil
}

var exportHeaders = []string{
	"Date", "App ID", "App Name", "Package", "Bundle", "Type",
	"Country", "Country Name", "Region", "Platform", "Currency",
	"Units Sold", "Gross Sales (USD)", "Net Sales (USD)", "Returns (USD)",
}

// ExportXLSX renders the filtered sales into a one-sheet workbook.
func (s *Service) ExportXLSX(filters *domain.SalesFilters) ([]byte, error) {
	records, err := s.sales.List(filters)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to address header cell")
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, errors.Wrap(err, "failed to write header")
		}
	}

	for i, record := range records {
		row := []any{
			record.Date,
			record.LegacyAppID,
			optString(record.AppName),
			optString(record.PackageName),
			optString(record.BundleName),
			record.LineItemType,
			record.CountryCode,
			optString(record.CountryName),
			optString(record.Region),
			optString(record.Platform),
			optString(record.Currency),
			record.LegacyUnitsSold,
			optFloat(record.GrossSalesUSD),
			optFloat(record.NetSalesUSD),
			optFloat(record.GrossReturnsUSD),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to address row")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buffer bytes.Buffer
	if err := f.Write(&buffer); err != nil {
		return nil, errors.Wrap(err, "failed to render workbook")
	}

	return buffer.Bytes(), nil
}

func optString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func optFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
