package validation

import (
	"fmt"

	"task-entry/internal/domain"
)

// EntryValidator provides validation for task entry drafts.
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// ValidateEntry validates a single draft entry. The date field is only
// required on the first entry of a batch; later entries may leave it
// blank. A non-blank date must still be a valid calendar date.
func (ev *EntryValidator) ValidateEntry(entry domain.TaskEntry, first bool) error {
	validationError := NewValidationError()
	ev.collectEntryErrors(validationError, entry, first, "")

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateEntries validates a batch of drafts for submission. Field
// errors are prefixed with the one-based entry position so the user can
// tell which card in the form failed.
func (ev *EntryValidator) ValidateEntries(entries []domain.TaskEntry) error {
	validationError := NewValidationError()

	if len(entries) == 0 {
		validationError.AddRequiredError("tasks")
		return validationError
	}

	for i, entry := range entries {
		prefix := fmt.Sprintf("entry %d: ", i+1)
		ev.collectEntryErrors(validationError, entry, i == 0, prefix)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskForUpdate validates an unrated task before an inline
// update request. Only persisted tasks can be updated.
func (ev *EntryValidator) ValidateTaskForUpdate(task domain.UnratedTask) error {
	validationError := NewValidationError()

	if !ev.validator.IsNonEmptyString(task.TaskID) {
		validationError.AddRequiredError("taskId")
	}
	if ev.validator.IsNonEmptyString(task.Hours) && !ev.validator.IsPositiveNumber(task.Hours) {
		validationError.AddInvalidValueError("hours", task.Hours, "must be a positive number")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func (ev *EntryValidator) collectEntryErrors(validationError *ValidationError, entry domain.TaskEntry, first bool, prefix string) {
	if first && !ev.validator.IsNonEmptyString(entry.Date) {
		validationError.AddRequiredError(prefix + "date")
	}
	if ev.validator.IsNonEmptyString(entry.Date) && !ev.validator.IsValidDate(entry.Date) {
		validationError.AddInvalidFormatError(prefix+"date", entry.Date, "YYYY-MM-DD")
	}
	if !ev.validator.IsNonEmptyString(entry.Project) {
		validationError.AddRequiredError(prefix + "project")
	}
	if !ev.validator.IsNonEmptyString(entry.TeamLead) {
		validationError.AddRequiredError(prefix + "teamLead")
	}
	if !ev.validator.IsNonEmptyString(entry.Title) {
		validationError.AddRequiredError(prefix + "taskTitle")
	}
	if !ev.validator.IsNonEmptyString(entry.Description) {
		validationError.AddRequiredError(prefix + "description")
	}
	if !ev.validator.IsNonEmptyString(entry.Status) {
		validationError.AddRequiredError(prefix + "status")
	}
	if !ev.validator.IsNonEmptyString(entry.Hours) {
		validationError.AddRequiredError(prefix + "hours")
	} else if !ev.validator.IsPositiveNumber(entry.Hours) {
		validationError.AddInvalidValueError(prefix+"hours", entry.Hours, "must be a positive number")
	}
	if ev.validator.IsNonEmptyString(entry.ExtraHours) && !ev.validator.IsNonNegativeNumber(entry.ExtraHours) {
		validationError.AddInvalidValueError(prefix+"extraHours", entry.ExtraHours, "must be a number of zero or more")
	}
}
