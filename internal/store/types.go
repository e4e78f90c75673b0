package store

import "time"

// #region snapshot
// Snapshot describes one exported copy of the catalog.
type Snapshot struct {
	SnapshotID  string
	Source      string // where the exported catalog came from, e.g. "builtin"
	DomainCount int
	CreatedAt   time.Time
}

// #endregion snapshot

// #region export-entry
// ExportEntry is a single row in the export_log table.
type ExportEntry struct {
	SnapshotID  string
	TriggerType string // "export"
	DomainCount int
	Note        string
	CreatedAt   time.Time
}

// #endregion export-entry
