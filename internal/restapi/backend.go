package restapi

import (
	"context"
)

// Backend defines the operations the rating backend exposes to this
// client. All persistence and rating logic live on the remote side;
// this interface is the only way the application talks to it.
type Backend interface {
	// FetchAllEmployees returns the full employee roster.
	FetchAllEmployees(ctx context.Context) ([]EmployeeRecord, error)

	// FetchEmployee returns the details for one employee.
	FetchEmployee(ctx context.Context, employeeID string) (*EmployeeDetails, error)

	// FetchUnratedTasks returns the employee's tasks that have not been
	// rated yet. When bustCache is true a cache-defeating parameter is
	// appended so the response reflects server state, not a cached copy.
	FetchUnratedTasks(ctx context.Context, employeeID string, bustCache bool) ([]TaskRecord, error)

	// UpdateTask updates the editable fields of one persisted task.
	UpdateTask(ctx context.Context, taskID string, update TaskUpdateRequest) error

	// SubmitTasks submits a batch of draft entries with any attached
	// files as a single multipart request.
	SubmitTasks(ctx context.Context, employeeID string, tasks []TaskPayload, files []Attachment) error
}
