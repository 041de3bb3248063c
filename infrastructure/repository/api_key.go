package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pdrosa/steam-sales-api/infrastructure/database/postgres"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

const apiKeysTable = "api_keys"

// APIKeyRepository stores the non-secret metadata of registered credentials.
// The secret itself lives in the encrypted keystore.
type APIKeyRepository interface {
	List() ([]*domain.APIKeyInfo, error)
	GetByID(id string) (*domain.APIKeyInfo, error)
	Create(info *domain.APIKeyInfo) error
	UpdateDisplayName(id, displayName string) error
	Delete(id string) error
	DeleteAll() error
}

type apiKeyRepository struct {
	conn *postgres.Connection
}

func NewAPIKeyRepository(conn *postgres.Connection) APIKeyRepository {
	return &apiKeyRepository{
		conn: conn,
	}
}

func (r *apiKeyRepository) List() ([]*domain.APIKeyInfo, error) {
	query, args, err := squirrel.
		Select("id", "display_name", "key_hint", "created_at").
		From(apiKeysTable).
		OrderBy("created_at DESC").
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

	keys := make([]*domain.APIKeyInfo, 0)
	for rows.Next() {
		info := &domain.APIKeyInfo{}
		if err := rows.Scan(&info.ID, &info.DisplayName, &info.KeyHint, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan api key: %w", err)
		}
		keys = append(keys, info)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating rows: %w", err)
	}

	return keys, nil
}

func (r *apiKeyRepository) GetByID(id string) (*domain.APIKeyInfo, error) {
	query, args, err := squirrel.
		Select("id", "display_name", "key_hint", "created_at").
		From(apiKeysTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	info := &domain.APIKeyInfo{}
	err = r.conn.QueryRow(query, args...).Scan(&info.ID, &info.DisplayName, &info.KeyHint, &info.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan api key: %w", err)
	}

	return info, nil
}

func (r *apiKeyRepository) Create(info *domain.APIKeyInfo) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(apiKeysTable).
		Columns("id", "display_name", "key_hint", "created_at").
		Values(info.ID, info.DisplayName, info.KeyHint, info.CreatedAt).
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

func (r *apiKeyRepository) UpdateDisplayName(id, displayName string) error {
	query, args, err := squirrel.
		Update(apiKeysTable).
		Set("display_name", displayName).
		Where(squirrel.Eq{"id": id}).
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

func (r *apiKeyRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(apiKeysTable).
		Where(squirrel.Eq{"id": id}).
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

func (r *apiKeyRepository) DeleteAll() error {
	if _, err := r.conn.Exec("DELETE FROM api_keys"); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}
