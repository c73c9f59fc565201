package tasks

import (
	"github.com/hibiken/asynq"
)

const TypeTourStatusRefresh = "tour:status_refresh"

// NewTourStatusRefreshTask builds the daily catalog reconciliation task.
// The task carries no payload; the worker re-reads the catalog on each run.
func NewTourStatusRefreshTask() *asynq.Task {
	return asynq.NewTask(TypeTourStatusRefresh, nil)
}
