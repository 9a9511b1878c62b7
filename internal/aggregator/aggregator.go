// Package aggregator maintains the date-grouped view of an employee's
// unrated tasks.
package aggregator

import (
	"context"

	"go.uber.org/zap"

	"task-entry/internal/domain"
	"task-entry/internal/restapi"
)

// Aggregator fetches unrated tasks and groups them by local work date,
// newest date first.
type Aggregator struct {
	backend restapi.Backend
	mapper  *domain.UnratedTaskMapper
	logger  *zap.Logger

	groups map[string][]domain.UnratedTask
	keys   []string
}

// New creates a new Aggregator instance.
func New(backend restapi.Backend, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		backend: backend,
		mapper:  domain.NewUnratedTaskMapper(),
		logger:  logger,
	}
}

// Load fetches the unrated tasks for the employee and rebuilds the
// grouping. Cached responses are acceptable.
func (a *Aggregator) Load(ctx context.Context, employeeID string) error {
	return a.load(ctx, employeeID, false)
}

// Refresh re-fetches with a cache-defeating parameter so the grouping
// reflects current server state.
func (a *Aggregator) Refresh(ctx context.Context, employeeID string) error {
	return a.load(ctx, employeeID, true)
}

func (a *Aggregator) load(ctx context.Context, employeeID string, bustCache bool) error {
	records, err := a.backend.FetchUnratedTasks(ctx, employeeID, bustCache)
	if err != nil {
		return err
	}

	tasks := make([]domain.UnratedTask, 0, len(records))
	for _, record := range records {
		task, ok := a.mapper.FromWire(record)
		if !ok {
			a.logger.Warn("skipping task with unparseable work date",
				zap.String("task_id", record.TaskID),
				zap.String("work_date", record.WorkDate))
			continue
		}
		tasks = append(tasks, task)
	}

	a.groups = domain.GroupByDate(tasks)
	a.keys = domain.SortedDateKeys(a.groups)
	return nil
}

// SortedDateKeys returns the date keys of the current grouping, newest
// first.
func (a *Aggregator) SortedDateKeys() []string {
	return a.keys
}

// Group returns the tasks recorded under the given date key.
func (a *Aggregator) Group(dateKey string) ([]domain.UnratedTask, bool) {
	tasks, ok := a.groups[dateKey]
	return tasks, ok
}

// HasData reports whether any unrated tasks are currently loaded.
func (a *Aggregator) HasData() bool {
	return len(a.groups) > 0
}
