package domain

// EditSnapshot is a working copy of one date group's tasks taken when
// the edit popup opens. Mutations apply only to the snapshot until the
// batch is submitted, after which the snapshot is discarded.
type EditSnapshot struct {
	Date  string
	Tasks []UnratedTask
}

// NewEditSnapshot copies the given group's task list into a snapshot.
func NewEditSnapshot(date string, tasks []UnratedTask) *EditSnapshot {
	copied := make([]UnratedTask, len(tasks))
	copy(copied, tasks)
	return &EditSnapshot{Date: date, Tasks: copied}
}

// IsEmpty returns true if the snapshot holds no tasks.
func (s *EditSnapshot) IsEmpty() bool {
	return s == nil || len(s.Tasks) == 0
}

// SetField updates one editable field on the task at the given index.
// An out-of-range index or unknown field name is a no-op.
func (s *EditSnapshot) SetField(index int, field, value string) bool {
	if s == nil || index < 0 || index >= len(s.Tasks) {
		return false
	}
	task := &s.Tasks[index]
	switch field {
	case "description":
		task.Description = value
	case "status":
		task.Status = value
	case "hours":
		task.Hours = value
	case "extraHours":
		task.ExtraHours = value
	case "prLink":
		task.PRLink = value
	default:
		return false
	}
	return true
}

// EditableFields lists the snapshot fields that may be changed inline.
var EditableFields = []string{"description", "status", "hours", "extraHours", "prLink"}

// IsEditableField reports whether field can be changed on a snapshot task.
func IsEditableField(field string) bool {
	for _, f := range EditableFields {
		if f == field {
			return true
		}
	}
	return false
}
