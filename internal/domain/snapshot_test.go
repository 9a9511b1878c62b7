package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEditSnapshot(t *testing.T) {
	original := []UnratedTask{
		{TaskID: "t1", Description: "first"},
		{TaskID: "t2", Description: "second"},
	}

	snapshot := NewEditSnapshot("2024-05-03", original)

	assert.Equal(t, "2024-05-03", snapshot.Date)
	assert.Len(t, snapshot.Tasks, 2)

	// Mutating the snapshot must not touch the source list.
	snapshot.SetField(0, "description", "changed")
	assert.Equal(t, "first", original[0].Description)
	assert.Equal(t, "changed", snapshot.Tasks[0].Description)
}

func TestEditSnapshot_IsEmpty(t *testing.T) {
	var nilSnapshot *EditSnapshot
	assert.True(t, nilSnapshot.IsEmpty())
	assert.True(t, NewEditSnapshot("2024-05-03", nil).IsEmpty())
	assert.False(t, NewEditSnapshot("2024-05-03", []UnratedTask{{TaskID: "t1"}}).IsEmpty())
}

func TestEditSnapshot_SetField(t *testing.T) {
	newSnapshot := func() *EditSnapshot {
		return NewEditSnapshot("2024-05-03", []UnratedTask{
			{TaskID: "t1", Description: "desc", Status: "Pending", Hours: "4"},
		})
	}

	t.Run("updates each editable field", func(t *testing.T) {
		s := newSnapshot()
		assert.True(t, s.SetField(0, "description", "new desc"))
		assert.True(t, s.SetField(0, "status", "Completed"))
		assert.True(t, s.SetField(0, "hours", "8"))
		assert.True(t, s.SetField(0, "extraHours", "2"))
		assert.True(t, s.SetField(0, "prLink", "https://example.com/pr/1"))

		task := s.Tasks[0]
		assert.Equal(t, "new desc", task.Description)
		assert.Equal(t, "Completed", task.Status)
		assert.Equal(t, "8", task.Hours)
		assert.Equal(t, "2", task.ExtraHours)
		assert.Equal(t, "https://example.com/pr/1", task.PRLink)
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		s := newSnapshot()
		assert.False(t, s.SetField(5, "description", "x"))
		assert.False(t, s.SetField(-1, "description", "x"))
		assert.Equal(t, "desc", s.Tasks[0].Description)
	})

	t.Run("unknown field is a no-op", func(t *testing.T) {
		s := newSnapshot()
		assert.False(t, s.SetField(0, "taskId", "forged"))
		assert.Equal(t, "t1", s.Tasks[0].TaskID)
	})
}
