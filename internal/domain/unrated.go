package domain

import (
	"sort"
	"time"
)

// UnratedTask represents a previously submitted task that has not yet
// been scored by a reviewer.
type UnratedTask struct {
	TaskID      string
	WorkDate    time.Time
	Description string
	Status      string
	Hours       string
	ExtraHours  string
	PRLink      string
}

// DateKeyFormat is the calendar-day key format used for grouping.
const DateKeyFormat = "2006-01-02"

// DateKey returns the grouping key for a work date: the calendar day in
// the local time zone, not shifted to UTC.
func DateKey(t time.Time) string {
	return t.Local().Format(DateKeyFormat)
}

// GroupByDate groups tasks by the calendar day of their work date.
// Order within a group is the arrival order of the input.
func GroupByDate(tasks []UnratedTask) map[string][]UnratedTask {
	grouped := make(map[string][]UnratedTask)
	for _, task := range tasks {
		key := DateKey(task.WorkDate)
		grouped[key] = append(grouped[key], task)
	}
	return grouped
}

// SortedDateKeys returns the group keys in descending chronological
// order, most recent first.
func SortedDateKeys(groups map[string][]UnratedTask) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	// YYYY-MM-DD keys sort chronologically as strings.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
