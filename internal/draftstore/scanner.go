package draftstore

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanDraft scans a single draft from a database row
func ScanDraft(scanner Scanner) (*Draft, error) {
	draft := &Draft{}
	var createdAt string
	var expanded int

	err := scanner.Scan(
		&draft.ID,
		&draft.Date,
		&draft.Project,
		&draft.TeamLead,
		&draft.Title,
		&draft.Description,
		&draft.Reference,
		&draft.PRLink,
		&draft.Status,
		&draft.Hours,
		&draft.ExtraHours,
		&draft.AttachmentPath,
		&expanded,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	draft.Expanded = expanded != 0
	draft.CreatedAt = ParseTimeFromDB(createdAt)

	return draft, nil
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanDrafts scans multiple drafts from database rows
func ScanDrafts(rows Rows) ([]*Draft, error) {
	var drafts []*Draft
	for rows.Next() {
		draft, err := ScanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drafts, nil
}
