package domain

import "strings"

// Projects is the fixed list of project names an entry can be filed under.
var Projects = []string{
	"Account, Card, Deposit, customer Onboarding",
	"Agent Banking",
	"Corporate Banking (Mobile)",
	"Icust",
	"Internet Banking (Retail & Corporate)",
	"KIOSK",
	"LOS",
	"Median",
	"Mobile Banking",
	"SIAS",
	"Teller",
	"Wallet Banking",
	"Website",
}

// Statuses is the set of values the status field of an entry may take.
var Statuses = []string{
	"Completed",
	"In Progress",
	"Pending",
}

// TaskEntry represents a daily work-task entry being composed in the form.
// ID is the local draft identifier; TaskID is assigned by the backend and
// stays empty until the entry has been persisted remotely.
type TaskEntry struct {
	ID             int64
	TaskID         string
	Date           string // YYYY-MM-DD
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
}

// NewTaskEntry creates a new blank draft entry.
func NewTaskEntry() TaskEntry {
	return TaskEntry{}
}

// IsPersisted returns true if the entry has been saved to the backend.
func (e TaskEntry) IsPersisted() bool {
	return e.TaskID != ""
}

// HasAttachment returns true if a file is associated with the entry.
func (e TaskEntry) HasAttachment() bool {
	return e.AttachmentPath != ""
}

// IsKnownProject reports whether name matches one of the fixed project names.
func IsKnownProject(name string) bool {
	trimmed := strings.TrimSpace(name)
	for _, p := range Projects {
		if p == trimmed {
			return true
		}
	}
	return false
}

// IsKnownStatus reports whether value is one of the fixed status values.
func IsKnownStatus(value string) bool {
	for _, s := range Statuses {
		if s == value {
			return true
		}
	}
	return false
}
