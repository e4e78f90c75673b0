package store

import (
	"database/sql"
	"fmt"
	"time"
)

// txExecer is satisfied by both *sql.DB and *sql.Tx.
type txExecer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// #region log-export
// logExport appends an entry to the export_log table inside tx.
func logExport(tx txExecer, entry ExportEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := tx.Exec(
		`INSERT INTO export_log (snapshot_id, trigger_type, domain_count, note, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.SnapshotID,
		entry.TriggerType,
		entry.DomainCount,
		nullIfEmpty(entry.Note),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log export: %w", err)
	}
	return nil
}

// ListExports returns export log entries, oldest first.
func (s *Store) ListExports() ([]ExportEntry, error) {
	rows, err := s.db.Query(
		`SELECT snapshot_id, trigger_type, domain_count, note, created_at FROM export_log ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	var entries []ExportEntry
	for rows.Next() {
		var e ExportEntry
		var note sql.NullString
		var createdStr string
		if err := rows.Scan(&e.SnapshotID, &e.TriggerType, &e.DomainCount, &note, &createdStr); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		if note.Valid {
			e.Note = note.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion log-export

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
