// Package editor drives the batch edit of one date group of unrated
// tasks. Edits accumulate in a snapshot and are pushed to the backend
// only when the whole batch is submitted.
package editor

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"task-entry/internal/domain"
	apperrors "task-entry/internal/errors"
	"task-entry/internal/notify"
	"task-entry/internal/restapi"
)

// Grouping is the date-grouped unrated view the editor works against.
type Grouping interface {
	Group(dateKey string) ([]domain.UnratedTask, bool)
	Refresh(ctx context.Context, employeeID string) error
}

// Controller owns the edit session for one date group.
type Controller struct {
	grouping Grouping
	backend  restapi.Backend
	mapper   *domain.UnratedTaskMapper
	notifier notify.Notifier
	logger   *zap.Logger

	snapshot *domain.EditSnapshot
}

// NewController creates a new edit Controller.
func NewController(grouping Grouping, backend restapi.Backend, notifier notify.Notifier, logger *zap.Logger) *Controller {
	return &Controller{
		grouping: grouping,
		backend:  backend,
		mapper:   domain.NewUnratedTaskMapper(),
		notifier: notifier,
		logger:   logger,
	}
}

// Open starts an edit session on the given date group. The group's
// tasks are copied; the live grouping is untouched until submission.
func (c *Controller) Open(dateKey string) error {
	tasks, ok := c.grouping.Group(dateKey)
	if !ok {
		return apperrors.NewNotFoundError("date group", dateKey)
	}
	c.snapshot = domain.NewEditSnapshot(dateKey, tasks)
	return nil
}

// IsOpen reports whether an edit session is active.
func (c *Controller) IsOpen() bool {
	return c.snapshot != nil
}

// Snapshot returns the working copy of the open session, or nil.
func (c *Controller) Snapshot() *domain.EditSnapshot {
	return c.snapshot
}

// UpdateField changes one field on the snapshot task at index. Nothing
// is sent to the backend until SubmitAll.
func (c *Controller) UpdateField(index int, field, value string) bool {
	return c.snapshot.SetField(index, field, value)
}

// Close discards the edit session without submitting.
func (c *Controller) Close() {
	c.snapshot = nil
}

// SubmitAll pushes every eligible snapshot task to the backend in
// parallel and waits for all of them. Tasks the backend never assigned
// an id are skipped with a warning. Whatever the outcome, the unrated
// view is refreshed afterwards so it reflects server state. The session
// closes only when every update succeeded.
func (c *Controller) SubmitAll(ctx context.Context, employeeID string) error {
	if c.snapshot.IsEmpty() || employeeID == "" {
		c.notifier.Alert("No tasks selected for editing!")
		return nil
	}

	var eligible []domain.UnratedTask
	for _, task := range c.snapshot.Tasks {
		if task.TaskID == "" {
			c.logger.Warn("skipping task without task id",
				zap.String("description", task.Description))
			continue
		}
		eligible = append(eligible, task)
	}

	if len(eligible) == 0 {
		c.notifier.Alert("No valid tasks to update!")
		return nil
	}

	errs := make([]error, len(eligible))
	var wg sync.WaitGroup
	for i, task := range eligible {
		wg.Add(1)
		go func(i int, task domain.UnratedTask) {
			defer wg.Done()
			errs[i] = c.backend.UpdateTask(ctx, task.TaskID, c.mapper.ToUpdateRequest(task))
		}(i, task)
	}
	wg.Wait()

	var firstErr error
	for _, err := range errs {
		if err != nil {
			firstErr = err
			break
		}
	}

	if firstErr == nil {
		c.notifier.Alert(fmt.Sprintf("%d task(s) updated successfully!", len(eligible)))
		c.Close()
	} else {
		c.logger.Error("batch update failed", zap.Error(firstErr))
		c.notifier.Alert("Error updating some tasks!")
	}

	if err := c.grouping.Refresh(ctx, employeeID); err != nil {
		c.logger.Warn("failed to refresh unrated tasks after edit", zap.Error(err))
	}

	return firstErr
}
