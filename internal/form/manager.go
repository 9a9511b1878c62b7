// Package form drives the draft entry list: adding, editing, expanding
// and removing draft entries, and submitting the batch to the backend.
package form

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"task-entry/internal/domain"
	"task-entry/internal/draftstore"
	apperrors "task-entry/internal/errors"
	"task-entry/internal/notify"
	"task-entry/internal/restapi"
	"task-entry/internal/validation"
)

// Refresher is called after a successful submission so the unrated view
// can pick up the new tasks. A refresh failure never fails the submit.
type Refresher interface {
	Refresh(ctx context.Context, employeeID string) error
}

// Manager maintains the draft entries of the task form.
type Manager struct {
	repo      draftstore.Repository
	backend   restapi.Backend
	refresher Refresher
	mapper    *domain.EntryMapper
	validator *validation.EntryValidator
	notifier  notify.Notifier
	logger    *zap.Logger
}

// NewManager creates a new form Manager.
func NewManager(repo draftstore.Repository, backend restapi.Backend, refresher Refresher, notifier notify.Notifier, logger *zap.Logger) *Manager {
	return &Manager{
		repo:      repo,
		backend:   backend,
		refresher: refresher,
		mapper:    domain.NewEntryMapper(),
		validator: validation.NewEntryValidator(),
		notifier:  notifier,
		logger:    logger,
	}
}

// Entries returns the current draft entries in form order. An empty
// form is seeded with a single blank entry.
func (m *Manager) Entries(ctx context.Context) ([]domain.TaskEntry, error) {
	drafts, err := m.repo.ListDrafts(ctx)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		entry, err := m.AddEntry(ctx)
		if err != nil {
			return nil, err
		}
		return []domain.TaskEntry{entry}, nil
	}
	return m.mapper.FromDatabaseSlice(drafts), nil
}

// AddEntry appends a blank draft entry and makes it the expanded one.
func (m *Manager) AddEntry(ctx context.Context) (domain.TaskEntry, error) {
	entry := domain.NewTaskEntry()
	draft := m.mapper.ToDatabase(entry)
	if err := m.repo.CreateDraft(ctx, &draft); err != nil {
		return domain.TaskEntry{}, err
	}
	if err := m.repo.SetExpanded(ctx, draft.ID); err != nil {
		return domain.TaskEntry{}, err
	}
	entry = m.mapper.FromDatabase(draft)
	entry.Expanded = true
	return entry, nil
}

// RemoveEntry deletes a draft entry after the user confirms. It reports
// whether the entry was actually removed.
func (m *Manager) RemoveEntry(ctx context.Context, id int64) (bool, error) {
	if _, err := m.repo.GetDraft(ctx, id); err != nil {
		return false, err
	}
	if !m.notifier.Confirm("Are you sure you want to delete this task?") {
		return false, nil
	}
	if err := m.repo.DeleteDraft(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleExpand expands the given entry, collapsing the rest, or
// collapses it when it is already the expanded one.
func (m *Manager) ToggleExpand(ctx context.Context, id int64) error {
	draft, err := m.repo.GetDraft(ctx, id)
	if err != nil {
		return err
	}
	if draft.Expanded {
		return m.repo.ClearExpanded(ctx)
	}
	return m.repo.SetExpanded(ctx, id)
}

// SetField updates one field of a draft entry.
func (m *Manager) SetField(ctx context.Context, id int64, field, value string) error {
	draft, err := m.repo.GetDraft(ctx, id)
	if err != nil {
		return err
	}

	switch field {
	case "date":
		draft.Date = value
	case "project":
		// The form offers a fixed list of projects to pick from.
		if value != "" && !domain.IsKnownProject(value) {
			return apperrors.NewInvalidInputError("project", value, "not a known project name")
		}
		draft.Project = strings.TrimSpace(value)
	case "teamLead":
		draft.TeamLead = value
	case "taskTitle":
		draft.Title = value
	case "description":
		draft.Description = value
	case "reference":
		draft.Reference = value
	case "prLink":
		draft.PRLink = value
	case "status":
		if value != "" && !domain.IsKnownStatus(value) {
			return apperrors.NewInvalidInputError("status", value, fmt.Sprintf("must be one of: %s", strings.Join(domain.Statuses, ", ")))
		}
		draft.Status = value
	case "hours":
		draft.Hours = value
	case "extraHours":
		draft.ExtraHours = value
	default:
		return apperrors.NewInvalidInputError("field", field, "not an editable entry field")
	}

	return m.repo.UpdateDraft(ctx, draft)
}

// AttachFile associates a file on disk with a draft entry.
func (m *Manager) AttachFile(ctx context.Context, id int64, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return apperrors.NewInvalidInputError("file", path, "file does not exist")
	}
	if info.IsDir() {
		return apperrors.NewInvalidInputError("file", path, "is a directory")
	}

	draft, err := m.repo.GetDraft(ctx, id)
	if err != nil {
		return err
	}
	draft.AttachmentPath = path
	return m.repo.UpdateDraft(ctx, draft)
}

// ClearAttachment removes the file association from a draft entry.
func (m *Manager) ClearAttachment(ctx context.Context, id int64) error {
	draft, err := m.repo.GetDraft(ctx, id)
	if err != nil {
		return err
	}
	draft.AttachmentPath = ""
	return m.repo.UpdateDraft(ctx, draft)
}

// Submit validates the whole form and sends it to the backend as one
// multipart request. Validation failures alert the user and make no
// network call. A successful submission resets the form to a single
// blank entry and refreshes the unrated view.
func (m *Manager) Submit(ctx context.Context, identity domain.EmployeeIdentity) error {
	drafts, err := m.repo.ListDrafts(ctx)
	if err != nil {
		return err
	}
	entries := m.mapper.FromDatabaseSlice(drafts)

	if err := m.validator.ValidateEntries(entries); err != nil {
		m.notifier.Alert("Please fill all required fields!")
		return err
	}

	attachments, err := m.loadAttachments(entries)
	if err != nil {
		return err
	}

	payloads := m.mapper.ToPayloadSlice(entries)
	if err := m.backend.SubmitTasks(ctx, identity.EmployeeID, payloads, attachments); err != nil {
		m.notifier.Alert("Error saving task!")
		return err
	}

	m.notifier.Alert("Task saved successfully!")

	if err := m.repo.DeleteAllDrafts(ctx); err != nil {
		return err
	}
	if _, err := m.AddEntry(ctx); err != nil {
		return err
	}

	if m.refresher != nil && identity.Resolved() {
		if err := m.refresher.Refresh(ctx, identity.EmployeeID); err != nil {
			m.logger.Warn("failed to refresh unrated tasks after submit", zap.Error(err))
		}
	}
	return nil
}

func (m *Manager) loadAttachments(entries []domain.TaskEntry) ([]restapi.Attachment, error) {
	var attachments []restapi.Attachment
	for _, entry := range entries {
		if !entry.HasAttachment() {
			continue
		}
		content, err := os.ReadFile(entry.AttachmentPath)
		if err != nil {
			return nil, apperrors.NewStorageError("read attachment "+entry.AttachmentPath, err)
		}
		attachments = append(attachments, restapi.Attachment{
			Filename: filepath.Base(entry.AttachmentPath),
			Content:  content,
		})
	}
	return attachments, nil
}
