package draftstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"task-entry/internal/draftstore/migrations"
	"task-entry/internal/errors"
)

// Repository defines the interface for draft persistence
type Repository interface {
	// Create operations
	CreateDraft(ctx context.Context, draft *Draft) error

	// Read operations
	GetDraft(ctx context.Context, id int64) (*Draft, error)
	ListDrafts(ctx context.Context) ([]*Draft, error)

	// Update operations
	UpdateDraft(ctx context.Context, draft *Draft) error
	SetExpanded(ctx context.Context, id int64) error
	ClearExpanded(ctx context.Context) error

	// Delete operations
	DeleteDraft(ctx context.Context, id int64) error
	DeleteAllDrafts(ctx context.Context) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a new SQLite draft repository instance. Every read is
// bounded by queryTimeout and every write by writeTimeout; a
// non-positive timeout leaves the caller's context untouched.
func New(dbPath string, queryTimeout, writeTimeout time.Duration) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := migrations.Apply(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db, queryTimeout: queryTimeout, writeTimeout: writeTimeout}, nil
}

func (r *SQLiteRepository) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.writeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.writeTimeout)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateDraft inserts a new draft row
func (r *SQLiteRepository) CreateDraft(ctx context.Context, draft *Draft) error {
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now()
	}

	query := `
	INSERT INTO drafts (date, project, team_lead, title, description, reference, pr_link, status, hours, extra_hours, attachment_path, expanded, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		draft.Date, draft.Project, draft.TeamLead, draft.Title, draft.Description,
		draft.Reference, draft.PRLink, draft.Status, draft.Hours, draft.ExtraHours,
		draft.AttachmentPath, BoolToInt(draft.Expanded), FormatTimeForDB(draft.CreatedAt))
	if err != nil {
		return err
	}

	draft.ID = id
	return nil
}

// GetDraft retrieves a draft by ID
func (r *SQLiteRepository) GetDraft(ctx context.Context, id int64) (*Draft, error) {
	query := `
	SELECT id, date, project, team_lead, title, description, reference, pr_link, status, hours, extra_hours, attachment_path, expanded, created_at
	FROM drafts
	WHERE id = ?`

	ctx, cancel := r.readContext(ctx)
	defer cancel()

	return QuerySingle(ctx, r.db, query, ScanDraft, "draft", fmt.Sprintf("%d", id), id)
}

// ListDrafts retrieves all drafts in insertion order
func (r *SQLiteRepository) ListDrafts(ctx context.Context) ([]*Draft, error) {
	query := `
	SELECT id, date, project, team_lead, title, description, reference, pr_link, status, hours, extra_hours, attachment_path, expanded, created_at
	FROM drafts
	ORDER BY id ASC`

	ctx, cancel := r.readContext(ctx)
	defer cancel()

	return QueryMultiple(ctx, r.db, query, ScanDrafts, "drafts")
}

// UpdateDraft updates an existing draft
func (r *SQLiteRepository) UpdateDraft(ctx context.Context, draft *Draft) error {
	query := `
	UPDATE drafts
	SET date = ?, project = ?, team_lead = ?, title = ?, description = ?, reference = ?, pr_link = ?, status = ?, hours = ?, extra_hours = ?, attachment_path = ?, expanded = ?
	WHERE id = ?`

	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, query, "draft", fmt.Sprintf("%d", draft.ID),
		draft.Date, draft.Project, draft.TeamLead, draft.Title, draft.Description,
		draft.Reference, draft.PRLink, draft.Status, draft.Hours, draft.ExtraHours,
		draft.AttachmentPath, BoolToInt(draft.Expanded), draft.ID)
}

// SetExpanded marks one draft as the expanded one and collapses the rest
func (r *SQLiteRepository) SetExpanded(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `UPDATE drafts SET expanded = 0 WHERE id != ?`, id); err != nil {
		return HandleStorageError("collapse drafts", err)
	}
	return ExecuteWithRowsAffected(ctx, r.db, `UPDATE drafts SET expanded = 1 WHERE id = ?`, "draft", fmt.Sprintf("%d", id), id)
}

// ClearExpanded collapses all drafts
func (r *SQLiteRepository) ClearExpanded(ctx context.Context) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `UPDATE drafts SET expanded = 0`); err != nil {
		return HandleStorageError("collapse drafts", err)
	}
	return nil
}

// DeleteDraft deletes a draft by ID
func (r *SQLiteRepository) DeleteDraft(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM drafts WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "draft", fmt.Sprintf("%d", id), id)
}

// DeleteAllDrafts removes every draft, used after a successful submission
func (r *SQLiteRepository) DeleteAllDrafts(ctx context.Context) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM drafts`); err != nil {
		return HandleStorageError("delete drafts", err)
	}
	return nil
}
