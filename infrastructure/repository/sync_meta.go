package repository

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/pdrosa/steam-sales-api/infrastructure/database/postgres"
)

const syncMetaTable = "sync_meta"

// SyncMetaRepository is a small key/value store for sync bookkeeping, most
// importantly the per-credential pagination highwatermark.
type SyncMetaRepository interface {
	GetHighwatermark(apiKeyID string) (int64, error)
	SetHighwatermark(apiKeyID string, value int64) error
	DeleteHighwatermark(apiKeyID string) error
	DeleteAllHighwatermarks() error
}

type syncMetaRepository struct {
	conn *postgres.Connection
}

func NewSyncMetaRepository(conn *postgres.Connection) SyncMetaRepository {
	return &syncMetaRepository{
		conn: conn,
	}
}

func highwatermarkKey(apiKeyID string) string {
	return fmt.Sprintf("highwatermark:%s", apiKeyID)
}

// GetHighwatermark returns the stored cursor for a credential, or 0 when none
// has been stored yet.
func (r *syncMetaRepository) GetHighwatermark(apiKeyID string) (int64, error) {
	query, args, err := squirrel.
		Select("value").
		From(syncMetaTable).
		Where(squirrel.Eq{"key": highwatermarkKey(apiKeyID)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var value string
	err = r.conn.QueryRow(query, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan highwatermark: %w", err)
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// A corrupted value restarts the sync from the beginning rather
		// than failing it.
		return 0, nil
	}

	return parsed, nil
}

func (r *syncMetaRepository) SetHighwatermark(apiKeyID string, value int64) error {
	query := squirrel.StatementBuilder.
		Insert(syncMetaTable).
		Columns("key", "value").
		Values(highwatermarkKey(apiKeyID), strconv.FormatInt(value, 10)).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *syncMetaRepository) DeleteHighwatermark(apiKeyID string) error {
	query, args, err := squirrel.
		Delete(syncMetaTable).
		Where(squirrel.Eq{"key": highwatermarkKey(apiKeyID)}).
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

func (r *syncMetaRepository) DeleteAllHighwatermarks() error {
	if _, err := r.conn.Exec("DELETE FROM sync_meta WHERE key LIKE 'highwatermark:%'"); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}
