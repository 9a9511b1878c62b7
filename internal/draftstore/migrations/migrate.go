// Package migrations brings the drafts database up to the embedded
// schema. Each numbered .up.sql file is one revision; applied revisions
// are recorded in the schema_version table and skipped on later runs.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"

	"task-entry/internal/errors"
)

//go:embed *.sql
var schemaFS embed.FS

type revision struct {
	version int
	upSQL   string
}

// Apply runs every schema revision the database has not seen yet.
func Apply(db *sql.DB) error {
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return errors.NewStorageError("create schema_version table", err)
	}

	revisions, err := loadRevisions()
	if err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, rev := range revisions {
		if applied[rev.version] {
			continue
		}
		if err := applyRevision(db, rev); err != nil {
			return err
		}
	}
	return nil
}

func loadRevisions() ([]revision, error) {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil, errors.NewStorageError("read embedded schema", err)
	}

	var revisions []revision
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		version := parseVersion(name)
		if version == 0 {
			continue
		}

		upSQL, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, errors.NewStorageError("read embedded schema", err)
		}

		revisions = append(revisions, revision{version: version, upSQL: string(upSQL)})
	}

	sort.Slice(revisions, func(i, j int) bool {
		return revisions[i].version < revisions[j].version
	})

	return revisions, nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_version`)
	if err != nil {
		return nil, errors.NewStorageError("read schema_version", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, errors.NewStorageError("read schema_version", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError("read schema_version", err)
	}
	return applied, nil
}

func applyRevision(db *sql.DB, rev revision) error {
	operation := fmt.Sprintf("apply schema revision %d", rev.version)

	tx, err := db.Begin()
	if err != nil {
		return errors.NewStorageError(operation, err)
	}

	if _, err := tx.Exec(rev.upSQL); err != nil {
		tx.Rollback()
		return errors.NewStorageError(operation, err)
	}

	if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, rev.version); err != nil {
		tx.Rollback()
		return errors.NewStorageError(operation, err)
	}

	return tx.Commit()
}

func parseVersion(filename string) int {
	var version int
	fmt.Sscanf(filename, "%d_", &version)
	return version
}
