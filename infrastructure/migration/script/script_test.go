package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columnLine = regexp.MustCompile(`^\s*([a-z_]+)\s`)

// ddlColumns extracts the declared column names from a CREATE TABLE statement.
func ddlColumns(t *testing.T, table string) map[string]bool {
	t.Helper()

	for _, statement := range statements {
		if !strings.Contains(statement, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			continue
		}

		columns := make(map[string]bool)
		body := statement[strings.Index(statement, "(")+1:]
		for _, line := range strings.Split(body, "\n") {
			if match := columnLine.FindStringSubmatch(line); match != nil {
				columns[match[1]] = true
			}
		}
		return columns
	}

	t.Fatalf("no CREATE TABLE statement for %s", table)
	return nil
}

// The sales upsert sets every one of these columns; a column missing from the
// DDL makes Postgres reject the whole INSERT ... ON CONFLICT at parse time.
func TestSalesTableCoversUpsertColumns(t *testing.T) {
	written := []string{
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
		"updated_at",
	}

	columns := ddlColumns(t, "sales")
	for _, column := range written {
		assert.True(t, columns[column], "sales DDL is missing column %q", column)
	}
}

func TestSyncMetaTableCoversUpsertColumns(t *testing.T) {
	columns := ddlColumns(t, "sync_meta")

	for _, column := range []string{"key", "value", "updated_at"} {
		assert.True(t, columns[column], "sync_meta DDL is missing column %q", column)
	}
}

func TestSyncTasksTableCoversRepositoryColumns(t *testing.T) {
	columns := ddlColumns(t, "sync_tasks")

	for _, column := range []string{"id", "api_key_id", "date", "status", "created_at", "completed_at"} {
		assert.True(t, columns[column], "sync_tasks DDL is missing column %q", column)
	}
}

func TestUsersTableCoversRepositoryColumns(t *testing.T) {
	columns := ddlColumns(t, "users")

	require.True(t, columns["email"])
	for _, column := range []string{"id", "name", "email", "password_hash", "active", "role_id"} {
		assert.True(t, columns[column], "users DDL is missing column %q", column)
	}
}
