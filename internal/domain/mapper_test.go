package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-entry/internal/draftstore"
	"task-entry/internal/restapi"
)

func TestEntryMapper_RoundTrip(t *testing.T) {
	mapper := NewEntryMapper()

	entry := TaskEntry{
		ID:             7,
		Date:           "2024-05-03",
		Project:        "Employee Rating System",
		TeamLead:       "Alex Casey",
		Title:          "Fix login",
		Description:    "Fixed the login redirect",
		Reference:      "TICKET-42",
		PRLink:         "https://example.com/pr/1",
		Status:         "Completed",
		Hours:          "6",
		ExtraHours:     "1",
		AttachmentPath: "/tmp/shot.png",
		Expanded:       true,
	}

	draft := mapper.ToDatabase(entry)
	back := mapper.FromDatabase(draft)

	assert.Equal(t, entry, back)
}

func TestEntryMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewEntryMapper()

	drafts := []*draftstore.Draft{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second", Expanded: true},
	}

	entries := mapper.FromDatabaseSlice(drafts)

	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, "second", entries[1].Title)
	assert.True(t, entries[1].Expanded)
}

func TestEntryMapper_ToPayload(t *testing.T) {
	mapper := NewEntryMapper()

	t.Run("without task id", func(t *testing.T) {
		payload := mapper.ToPayload(TaskEntry{Title: "work", Hours: "4"})

		assert.Nil(t, payload.TaskID)
		assert.Equal(t, "work", payload.TaskTitle)
		assert.Equal(t, "4", payload.Hours)
	})

	t.Run("with task id", func(t *testing.T) {
		payload := mapper.ToPayload(TaskEntry{TaskID: "abc123"})

		require.NotNil(t, payload.TaskID)
		assert.Equal(t, "abc123", *payload.TaskID)
	})
}

func TestUnratedTaskMapper_FromWire(t *testing.T) {
	mapper := NewUnratedTaskMapper()

	t.Run("RFC3339 work date", func(t *testing.T) {
		task, ok := mapper.FromWire(restapi.TaskRecord{
			TaskID:      "t1",
			WorkDate:    "2024-05-03T09:30:00Z",
			Description: "did things",
			Status:      "Pending",
			Hours:       "8",
			ExtraHours:  "0",
			PRLink:      "https://example.com/pr/2",
		})

		require.True(t, ok)
		assert.Equal(t, "t1", task.TaskID)
		assert.Equal(t, time.Date(2024, 5, 3, 9, 30, 0, 0, time.UTC), task.WorkDate)
		assert.Equal(t, "8", task.Hours)
	})

	t.Run("date-only work date", func(t *testing.T) {
		task, ok := mapper.FromWire(restapi.TaskRecord{WorkDate: "2024-05-03"})

		require.True(t, ok)
		assert.Equal(t, 2024, task.WorkDate.Year())
	})

	t.Run("unparseable work date", func(t *testing.T) {
		_, ok := mapper.FromWire(restapi.TaskRecord{WorkDate: "not a date"})

		assert.False(t, ok)
	})
}

func TestUnratedTaskMapper_ToUpdateRequest(t *testing.T) {
	mapper := NewUnratedTaskMapper()

	req := mapper.ToUpdateRequest(UnratedTask{
		TaskID:      "t1",
		Description: "updated",
		Status:      "Completed",
		Hours:       "7",
		ExtraHours:  "2",
		PRLink:      "https://example.com/pr/3",
	})

	assert.Equal(t, "updated", req.Description)
	assert.Equal(t, "Completed", req.Status)
	assert.Equal(t, "7", req.Hours)
	assert.Equal(t, "2", req.ExtraHours)
	assert.Equal(t, "https://example.com/pr/3", req.PRLink)
}

func TestRosterMapper_FromWire(t *testing.T) {
	mapper := NewRosterMapper()

	employees := mapper.FromWire([]restapi.EmployeeRecord{
		{EmployeeName: "Alex Casey", EmployeeRole: "Team Lead"},
		{EmployeeName: "Sam Reed", Role: "Developer"},
	})

	require.Len(t, employees, 2)
	assert.Equal(t, Employee{Name: "Alex Casey", Role: "Team Lead"}, employees[0])
	assert.Equal(t, Employee{Name: "Sam Reed", Role: "Developer"}, employees[1])
}
