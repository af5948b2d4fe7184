// Package storage provides SQLite-based persistence for resolved layouts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/glyphjam/internal/core"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

// ErrSnapshotNotFound is returned when a snapshot id is unknown.
var ErrSnapshotNotFound = errors.New("storage: snapshot not found")

// Store manages the SQLite database connection for layout snapshots.
// It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Snapshot is a resolved layout recorded for one document revision.
type Snapshot struct {
	ID        string
	Scene     string
	Checksum  string
	ViewportW float64
	ViewportH float64
	CreatedAt time.Time
	Layout    scene.Layout // nil in listings
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			scene TEXT NOT NULL,
			checksum TEXT NOT NULL,
			viewport_w REAL NOT NULL,
			viewport_h REAL NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_scene ON snapshots(scene, created_at DESC);

		CREATE TABLE IF NOT EXISTS snapshot_rects (
			snapshot_id TEXT NOT NULL,
			node_id TEXT NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			w REAL NOT NULL,
			h REAL NOT NULL,
			PRIMARY KEY (snapshot_id, node_id)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSnapshot records a resolved layout.
// Returns the id of the new snapshot.
func (s *Store) SaveSnapshot(sceneName, checksum string, w, h float64, layout scene.Layout) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO snapshots (id, scene, checksum, viewport_w, viewport_h, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, sceneName, checksum, w, h, s.now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save snapshot: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO snapshot_rects (snapshot_id, node_id, x, y, w, h) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare rect insert: %w", err)
	}
	defer stmt.Close()

	for _, nodeID := range layout.IDs() {
		r := layout[nodeID]
		if _, err := stmt.Exec(id, nodeID, r.X, r.Y, r.W, r.H); err != nil {
			return "", fmt.Errorf("storage: cannot save rect %s: %w", nodeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit snapshot: %w", err)
	}
	return id, nil
}

// ListSnapshots returns the most recent snapshots, newest first.
// An empty scene name lists every scene.
func (s *Store) ListSnapshots(sceneName string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene, checksum, viewport_w, viewport_h, created_at
		 FROM snapshots
		 WHERE ? = '' OR scene = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		sceneName, sceneName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return snapshots, nil
}

// LoadSnapshot returns a snapshot together with its layout.
func (s *Store) LoadSnapshot(id string) (*Snapshot, error) {
	row := s.db.QueryRow(
		`SELECT id, scene, checksum, viewport_w, viewport_h, created_at
		 FROM snapshots WHERE id = ?`,
		id,
	)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT node_id, x, y, w, h FROM snapshot_rects WHERE snapshot_id = ?",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rects: %w", err)
	}
	defer rows.Close()

	snap.Layout = make(scene.Layout)
	for rows.Next() {
		var nodeID string
		var r core.RectF
		if err := rows.Scan(&nodeID, &r.X, &r.Y, &r.W, &r.H); err != nil {
			return nil, fmt.Errorf("storage: cannot scan rect: %w", err)
		}
		snap.Layout[nodeID] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &snap, nil
}

// DeleteSnapshots removes every snapshot of a scene.
// Returns the number of snapshots deleted.
func (s *Store) DeleteSnapshots(sceneName string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"DELETE FROM snapshot_rects WHERE snapshot_id IN (SELECT id FROM snapshots WHERE scene = ?)",
		sceneName,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete rects: %w", err)
	}

	res, err := tx.Exec("DELETE FROM snapshots WHERE scene = ?", sceneName)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted snapshots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var snap Snapshot
	var createdAt int64
	err := row.Scan(&snap.ID, &snap.Scene, &snap.Checksum, &snap.ViewportW, &snap.ViewportH, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, err
	}
	if err != nil {
		return snap, fmt.Errorf("storage: cannot scan snapshot: %w", err)
	}
	snap.CreatedAt = time.Unix(0, createdAt)
	return snap, nil
}
