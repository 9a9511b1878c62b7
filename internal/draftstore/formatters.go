package draftstore

import (
	"time"
)

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 string stored in the database.
// Unparseable values come back as the zero time.
func ParseTimeFromDB(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BoolToInt converts a bool to the 0/1 representation stored in SQLite
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
