package domain

import "fmt"

// Sync task statuses
const (
	SyncTaskStatusTodo       = "todo"
	SyncTaskStatusInProgress = "in_progress"
	SyncTaskStatusDone       = "done"
)

// SyncTask is one unit of sync work: fetch the sales of a single date for a
// single credential. Tasks survive restarts so an interrupted sync resumes
// where it stopped.
type SyncTask struct {
	ID          string `json:"id"`
	APIKeyID    string `json:"apiKeyId"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"createdAt"`
	CompletedAt *int64 `json:"completedAt,omitempty"`
}

// SyncTaskID builds the task identity from the credential and date.
func SyncTaskID(apiKeyID, date string) string {
	return fmt.Sprintf("%s|%s", apiKeyID, date)
}

// PendingTaskCount is the number of open tasks for one credential.
type PendingTaskCount struct {
	APIKeyID string `json:"apiKeyId"`
	Count    int64  `json:"count"`
}
