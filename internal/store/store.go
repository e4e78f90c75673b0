package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/awakened-intelligence/catalog-inspector/internal/catalog"
)

// ErrNoSnapshot is returned when the database holds no active catalog snapshot.
var ErrNoSnapshot = errors.New("no catalog snapshot")

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	snapshot_id   TEXT PRIMARY KEY,
	source        TEXT NOT NULL,
	domain_count  INTEGER NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS domains (
	snapshot_id   TEXT NOT NULL,
	position      INTEGER NOT NULL,
	key           TEXT NOT NULL,
	name          TEXT NOT NULL,
	source        TEXT NOT NULL,
	node_count    INTEGER NOT NULL CHECK (node_count >= 0),
	avg_posterior REAL NOT NULL,
	tier          TEXT NOT NULL,
	core_insight  TEXT NOT NULL,
	posterior     REAL NOT NULL,
	warmth        TEXT NOT NULL,
	PRIMARY KEY (snapshot_id, key),
	FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);

CREATE TABLE IF NOT EXISTS evidence (
	snapshot_id   TEXT NOT NULL,
	domain_key    TEXT NOT NULL,
	position      INTEGER NOT NULL,
	citation      TEXT NOT NULL,
	PRIMARY KEY (snapshot_id, domain_key, position),
	FOREIGN KEY (snapshot_id, domain_key) REFERENCES domains(snapshot_id, key)
);

CREATE TABLE IF NOT EXISTS active_snapshot (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	snapshot_id   TEXT NOT NULL,
	FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);

CREATE TABLE IF NOT EXISTS export_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	snapshot_id   TEXT NOT NULL,
	trigger_type  TEXT NOT NULL,
	domain_count  INTEGER NOT NULL,
	note          TEXT,
	created_at    TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store persists catalog snapshots in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region save-catalog
// SaveCatalog writes every domain of cat as a new snapshot and makes it the
// active one. Definition order and evidence order are kept in position columns.
func (s *Store) SaveCatalog(cat *catalog.Catalog, source string) (Snapshot, error) {
	snap := Snapshot{
		SnapshotID:  uuid.New().String(),
		Source:      source,
		DomainCount: cat.Len(),
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Snapshot{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO snapshots (snapshot_id, source, domain_count, created_at) VALUES (?, ?, ?, ?)`,
		snap.SnapshotID, snap.Source, snap.DomainCount, snap.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}

	for pos, e := range cat.ListAll() {
		r := e.Record
		_, err = tx.Exec(
			`INSERT INTO domains (snapshot_id, position, key, name, source, node_count, avg_posterior, tier, core_insight, posterior, warmth)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.SnapshotID, pos, r.Key, r.Name, r.Source, r.Count, r.AvgPosterior, string(r.Tier),
			r.SampleNode.CoreInsight, r.SampleNode.Posterior, string(r.SampleNode.Warmth),
		)
		if err != nil {
			return Snapshot{}, fmt.Errorf("insert domain %s: %w", r.Key, err)
		}
		for i, ev := range r.SampleNode.Evidence {
			_, err = tx.Exec(
				`INSERT INTO evidence (snapshot_id, domain_key, position, citation) VALUES (?, ?, ?, ?)`,
				snap.SnapshotID, r.Key, i, ev,
			)
			if err != nil {
				return Snapshot{}, fmt.Errorf("insert evidence %s/%d: %w", r.Key, i, err)
			}
		}
	}

	_, err = tx.Exec(
		`INSERT INTO active_snapshot (id, snapshot_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET snapshot_id = excluded.snapshot_id`,
		snap.SnapshotID,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("set active: %w", err)
	}

	err = logExport(tx, ExportEntry{
		SnapshotID:  snap.SnapshotID,
		TriggerType: "export",
		DomainCount: snap.DomainCount,
		Note:        source,
		CreatedAt:   snap.CreatedAt,
	})
	if err != nil {
		return Snapshot{}, err
	}

	if err := tx.Commit(); err != nil {
		return Snapshot{}, fmt.Errorf("commit: %w", err)
	}
	return snap, nil
}

// #endregion save-catalog

// #region load-catalog
// LoadCatalog reads the active snapshot into an immutable catalog.
func (s *Store) LoadCatalog() (*catalog.Catalog, Snapshot, error) {
	var snapshotID string
	err := s.db.QueryRow(`SELECT snapshot_id FROM active_snapshot WHERE id = 1`).Scan(&snapshotID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, Snapshot{}, fmt.Errorf("get active: %w", err)
	}
	return s.LoadSnapshot(snapshotID)
}

// LoadSnapshot reads a specific snapshot into an immutable catalog.
func (s *Store) LoadSnapshot(snapshotID string) (*catalog.Catalog, Snapshot, error) {
	snap, err := s.getSnapshot(snapshotID)
	if err != nil {
		return nil, Snapshot{}, err
	}

	evidence, err := s.loadEvidence(snapshotID)
	if err != nil {
		return nil, Snapshot{}, err
	}

	rows, err := s.db.Query(
		`SELECT key, name, source, node_count, avg_posterior, tier, core_insight, posterior, warmth
		 FROM domains WHERE snapshot_id = ? ORDER BY position ASC`, snapshotID,
	)
	if err != nil {
		return nil, Snapshot{}, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	var records []catalog.DomainRecord
	for rows.Next() {
		var r catalog.DomainRecord
		var tier, warmth string
		if err := rows.Scan(&r.Key, &r.Name, &r.Source, &r.Count, &r.AvgPosterior, &tier,
			&r.SampleNode.CoreInsight, &r.SampleNode.Posterior, &warmth); err != nil {
			return nil, Snapshot{}, fmt.Errorf("scan domain: %w", err)
		}
		r.Tier = catalog.Tier(tier)
		r.SampleNode.Warmth = catalog.Warmth(warmth)
		r.SampleNode.Evidence = evidence[r.Key]
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, Snapshot{}, fmt.Errorf("list domains: %w", err)
	}

	cat, err := catalog.New(records...)
	if err != nil {
		return nil, Snapshot{}, fmt.Errorf("snapshot %s: %w", snapshotID, err)
	}
	return cat, snap, nil
}

func (s *Store) getSnapshot(id string) (Snapshot, error) {
	var snap Snapshot
	var createdStr string
	err := s.db.QueryRow(
		`SELECT snapshot_id, source, domain_count, created_at FROM snapshots WHERE snapshot_id = ?`, id,
	).Scan(&snap.SnapshotID, &snap.Source, &snap.DomainCount, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("snapshot %s: %w", id, ErrNoSnapshot)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	snap.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return snap, nil
}

func (s *Store) loadEvidence(snapshotID string) (map[string][]string, error) {
	rows, err := s.db.Query(
		`SELECT domain_key, citation FROM evidence WHERE snapshot_id = ? ORDER BY domain_key, position ASC`,
		snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("list evidence: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var key, citation string
		if err := rows.Scan(&key, &citation); err != nil {
			return nil, fmt.Errorf("scan evidence: %w", err)
		}
		out[key] = append(out[key], citation)
	}
	return out, rows.Err()
}

// #endregion load-catalog

// #region list-snapshots
// ListSnapshots returns the most recent snapshots, newest first.
func (s *Store) ListSnapshots(limit int) ([]Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT snapshot_id, source, domain_count, created_at
		 FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var createdStr string
		if err := rows.Scan(&snap.SnapshotID, &snap.Source, &snap.DomainCount, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		snap.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// #endregion list-snapshots
