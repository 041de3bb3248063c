package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pdrosa/steam-sales-api/infrastructure/database/postgres"
	"github.com/pdrosa/steam-sales-api/internal/domain"
)

const syncTasksTable = "sync_tasks"

var pendingStatuses = []string{domain.SyncTaskStatusTodo, domain.SyncTaskStatusInProgress}

type SyncTaskRepository interface {
	Replace(apiKeyID string, dates []string) error
	Pending() ([]*domain.SyncTask, error)
	PendingForKey(apiKeyID string) ([]*domain.SyncTask, error)
	MarkInProgress(taskID string) error
	MarkDone(taskID string) error
	CountPending() ([]*domain.PendingTaskCount, error)
	CountAllPending() (int64, error)
	ResetInProgress() (int64, error)
	ClearCompleted() error
	DeleteForKey(apiKeyID string) error
	DeleteAll() error
}

type syncTaskRepository struct {
	conn *postgres.Connection
}

func NewSyncTaskRepository(conn *postgres.Connection) SyncTaskRepository {
	return &syncTaskRepository{
		conn: conn,
	}
}

// Replace registers one task per changed date, resetting any previous task
// for the same credential and date back to todo.
func (r *syncTaskRepository) Replace(apiKeyID string, dates []string) error {
	now := time.Now().UnixMilli()

	for _, date := range dates {
		query := squirrel.StatementBuilder.
			Insert(syncTasksTable).
			Columns("id", "api_key_id", "date", "status", "created_at", "completed_at").
			Values(domain.SyncTaskID(apiKeyID, date), apiKeyID, date, domain.SyncTaskStatusTodo, now, nil).
			Suffix(`
				ON CONFLICT (id) DO UPDATE SET
					status = EXCLUDED.status,
					created_at = EXCLUDED.created_at,
					completed_at = NULL
			`).
			PlaceholderFormat(squirrel.Dollar)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

func (r *syncTaskRepository) Pending() ([]*domain.SyncTask, error) {
	return r.pendingWhere(squirrel.Eq{"status": pendingStatuses})
}

func (r *syncTaskRepository) PendingForKey(apiKeyID string) ([]*domain.SyncTask, error) {
	return r.pendingWhere(squirrel.And{
		squirrel.Eq{"api_key_id": apiKeyID},
		squirrel.Eq{"status": pendingStatuses},
	})
}

func (r *syncTaskRepository) pendingWhere(cond squirrel.Sqlizer) ([]*domain.SyncTask, error) {
	query, args, err := squirrel.
		Select("id", "api_key_id", "date", "status", "created_at", "completed_at").
		From(syncTasksTable).
		Where(cond).
		OrderBy("date ASC").
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

	tasks := make([]*domain.SyncTask, 0)
	for rows.Next() {
		task, err := scanSyncTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating rows: %w", err)
	}

	return tasks, nil
}

func (r *syncTaskRepository) MarkInProgress(taskID string) error {
	return r.updateStatus(taskID, domain.SyncTaskStatusInProgress, nil)
}

func (r *syncTaskRepository) MarkDone(taskID string) error {
	now := time.Now().UnixMilli()
	return r.updateStatus(taskID, domain.SyncTaskStatusDone, &now)
}

func (r *syncTaskRepository) updateStatus(taskID, status string, completedAt *int64) error {
	query, args, err := squirrel.
		Update(syncTasksTable).
		Set("status", status).
		Set("completed_at", completedAt).
		Where(squirrel.Eq{"id": taskID}).
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

func (r *syncTaskRepository) CountPending() ([]*domain.PendingTaskCount, error) {
	query, args, err := squirrel.
		Select("api_key_id", "COUNT(*)").
		From(syncTasksTable).
		Where(squirrel.Eq{"status": pendingStatuses}).
		GroupBy("api_key_id").
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

	counts := make([]*domain.PendingTaskCount, 0)
	for rows.Next() {
		count := &domain.PendingTaskCount{}
		if err := rows.Scan(&count.APIKeyID, &count.Count); err != nil {
			return nil, fmt.Errorf("failed to scan pending count: %w", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating rows: %w", err)
	}

	return counts, nil
}

func (r *syncTaskRepository) CountAllPending() (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(syncTasksTable).
		Where(squirrel.Eq{"status": pendingStatuses}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to scan pending count: %w", err)
	}

	return count, nil
}

// ResetInProgress moves stalled in-progress tasks back to todo. Run at
// startup so a crash mid-sync does not strand tasks.
func (r *syncTaskRepository) ResetInProgress() (int64, error) {
	result, err := r.conn.Exec(
		"UPDATE sync_tasks SET status = $1 WHERE status = $2",
		domain.SyncTaskStatusTodo, domain.SyncTaskStatusInProgress,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (r *syncTaskRepository) ClearCompleted() error {
	if _, err := r.conn.Exec("DELETE FROM sync_tasks WHERE status = $1", domain.SyncTaskStatusDone); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

func (r *syncTaskRepository) DeleteForKey(apiKeyID string) error {
	query, args, err := squirrel.
		Delete(syncTasksTable).
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

func (r *syncTaskRepository) DeleteAll() error {
	query, _, err := squirrel.
		Delete(syncTasksTable).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(query); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func scanSyncTask(rows *sql.Rows) (*domain.SyncTask, error) {
	task := &domain.SyncTask{}

	err := rows.Scan(
		&task.ID,
		&task.APIKeyID,
		&task.Date,
		&task.Status,
		&task.CreatedAt,
		&task.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return task, nil
}
