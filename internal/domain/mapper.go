package domain

import (
	"time"

	"task-entry/internal/draftstore"
	"task-entry/internal/restapi"
)

// EntryMapper handles conversion between domain and storage draft models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain TaskEntry to a storage Draft.
func (m *EntryMapper) ToDatabase(entry TaskEntry) draftstore.Draft {
	return draftstore.Draft{
		ID:             entry.ID,
		Date:           entry.Date,
		Project:        entry.Project,
		TeamLead:       entry.TeamLead,
		Title:          entry.Title,
		Description:    entry.Description,
		Reference:      entry.Reference,
		PRLink:         entry.PRLink,
		Status:         entry.Status,
		Hours:          entry.Hours,
		ExtraHours:     entry.ExtraHours,
		AttachmentPath: entry.AttachmentPath,
		Expanded:       entry.Expanded,
	}
}

// FromDatabase converts a storage Draft to a domain TaskEntry.
func (m *EntryMapper) FromDatabase(draft draftstore.Draft) TaskEntry {
	return TaskEntry{
		ID:             draft.ID,
		Date:           draft.Date,
		Project:        draft.Project,
		TeamLead:       draft.TeamLead,
		Title:          draft.Title,
		Description:    draft.Description,
		Reference:      draft.Reference,
		PRLink:         draft.PRLink,
		Status:         draft.Status,
		Hours:          draft.Hours,
		ExtraHours:     draft.ExtraHours,
		AttachmentPath: draft.AttachmentPath,
		Expanded:       draft.Expanded,
	}
}

// FromDatabaseSlice converts a slice of storage Drafts to domain TaskEntries.
func (m *EntryMapper) FromDatabaseSlice(drafts []*draftstore.Draft) []TaskEntry {
	entries := make([]TaskEntry, len(drafts))
	for i, draft := range drafts {
		entries[i] = m.FromDatabase(*draft)
	}
	return entries
}

// ToPayload converts a domain TaskEntry to the wire payload submitted
// to the backend. A missing TaskID is serialized as null.
func (m *EntryMapper) ToPayload(entry TaskEntry) restapi.TaskPayload {
	var taskID *string
	if entry.TaskID != "" {
		id := entry.TaskID
		taskID = &id
	}
	return restapi.TaskPayload{
		TaskID:      taskID,
		Date:        entry.Date,
		Project:     entry.Project,
		TeamLead:    entry.TeamLead,
		TaskTitle:   entry.Title,
		Description: entry.Description,
		Reference:   entry.Reference,
		PRLink:      entry.PRLink,
		Status:      entry.Status,
		Hours:       entry.Hours,
		ExtraHours:  entry.ExtraHours,
	}
}

// ToPayloadSlice converts a slice of domain TaskEntries to wire payloads.
func (m *EntryMapper) ToPayloadSlice(entries []TaskEntry) []restapi.TaskPayload {
	payloads := make([]restapi.TaskPayload, len(entries))
	for i, entry := range entries {
		payloads[i] = m.ToPayload(entry)
	}
	return payloads
}

// workDateLayouts are the formats the backend has been seen using for
// work dates.
var workDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnratedTaskMapper handles conversion between wire and domain unrated tasks.
type UnratedTaskMapper struct{}

// NewUnratedTaskMapper creates a new UnratedTaskMapper instance.
func NewUnratedTaskMapper() *UnratedTaskMapper {
	return &UnratedTaskMapper{}
}

// FromWire converts a wire TaskRecord to a domain UnratedTask. The ok
// result is false when the work date cannot be parsed.
func (m *UnratedTaskMapper) FromWire(record restapi.TaskRecord) (UnratedTask, bool) {
	workDate, ok := parseWorkDate(record.WorkDate)
	if !ok {
		return UnratedTask{}, false
	}
	return UnratedTask{
		TaskID:      record.TaskID,
		WorkDate:    workDate,
		Description: record.Description,
		Status:      record.Status,
		Hours:       string(record.Hours),
		ExtraHours:  string(record.ExtraHours),
		PRLink:      record.PRLink,
	}, true
}

// ToUpdateRequest converts a domain UnratedTask to the wire body of an
// inline update.
func (m *UnratedTaskMapper) ToUpdateRequest(task UnratedTask) restapi.TaskUpdateRequest {
	return restapi.TaskUpdateRequest{
		Description: task.Description,
		Status:      task.Status,
		Hours:       task.Hours,
		ExtraHours:  task.ExtraHours,
		PRLink:      task.PRLink,
	}
}

// RosterMapper handles conversion of the wire employee roster.
type RosterMapper struct{}

// NewRosterMapper creates a new RosterMapper instance.
func NewRosterMapper() *RosterMapper {
	return &RosterMapper{}
}

// FromWire converts wire EmployeeRecords to domain Employees.
func (m *RosterMapper) FromWire(records []restapi.EmployeeRecord) []Employee {
	employees := make([]Employee, len(records))
	for i, record := range records {
		employees[i] = Employee{
			Name: record.EmployeeName,
			Role: record.RoleName(),
		}
	}
	return employees
}

func parseWorkDate(s string) (time.Time, bool) {
	for _, layout := range workDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
