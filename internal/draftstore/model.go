package draftstore

import "time"

// Draft is one form entry persisted between CLI invocations. Rows are
// kept in insertion order via the autoincrement id. At most one draft
// has Expanded set.
type Draft struct {
	ID             int64
	Date           string
	Project        string
	TeamLead       string
	Title          string
	Description    string
	Reference      string
	PRLink         string
	Status         string
	Hours          string
	ExtraHours     string
	AttachmentPath string
	Expanded       bool
	CreatedAt      time.Time
}
