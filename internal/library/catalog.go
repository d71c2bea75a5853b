package library

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// File kinds recorded in the catalog.
const (
	KindMusic    = "music"
	KindPlaylist = "playlist"
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS scanned_files (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL UNIQUE,
    stem TEXT NOT NULL,
    kind TEXT NOT NULL,
    scanned_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scanned_files_stem ON scanned_files(stem);
CREATE INDEX IF NOT EXISTS idx_scanned_files_kind ON scanned_files(kind);
`

// Catalog persists the results of the last library scan in SQLite so the CLI
// can inspect them between runs. Matching never reads from the catalog; it is
// an inspection surface only.
type Catalog struct {
	db   *sql.DB
	path string
}

// OpenCatalog initializes or connects to the catalog database in dir.
func OpenCatalog(dir string) (*Catalog, error) {
	dbPath := filepath.Join(dir, "catalog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(catalogSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply catalog schema: %w", err)
	}

	return &Catalog{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the catalog database location.
func (c *Catalog) Path() string {
	return c.path
}

// ReplaceScan atomically replaces the catalog contents with the given scan.
func (c *Catalog) ReplaceScan(ctx context.Context, music, playlists []string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM scanned_files"); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO scanned_files (path, stem, kind, scanned_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare catalog insert: %w", err)
	}
	defer stmt.Close()

	insert := func(paths []string, kind string) error {
		for _, path := range paths {
			if _, err := stmt.ExecContext(ctx, path, Stem(path), kind, timestamp); err != nil {
				return fmt.Errorf("insert %s %q: %w", kind, path, err)
			}
		}
		return nil
	}
	if err := insert(music, KindMusic); err != nil {
		return err
	}
	if err := insert(playlists, KindPlaylist); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog transaction: %w", err)
	}
	return nil
}

// Stats summarizes the last recorded scan.
type Stats struct {
	MusicFiles    int
	PlaylistFiles int
	DistinctStems int
	LastScannedAt string
}

// Stats reports counts and the timestamp of the last scan.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	row := c.db.QueryRowContext(ctx, `
        SELECT
            COUNT(CASE WHEN kind = ? THEN 1 END),
            COUNT(CASE WHEN kind = ? THEN 1 END),
            COUNT(DISTINCT CASE WHEN kind = ? THEN stem END),
            COALESCE(MAX(scanned_at), '')
        FROM scanned_files`,
		KindMusic, KindPlaylist, KindMusic)
	if err := row.Scan(&stats.MusicFiles, &stats.PlaylistFiles, &stats.DistinctStems, &stats.LastScannedAt); err != nil {
		return Stats{}, fmt.Errorf("query catalog stats: %w", err)
	}
	return stats, nil
}

// Lookup returns the music file paths recorded for stem, in insertion order.
func (c *Catalog) Lookup(ctx context.Context, stem string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT path FROM scanned_files WHERE stem = ? AND kind = ? ORDER BY id", stem, KindMusic)
	if err != nil {
		return nil, fmt.Errorf("query catalog stem %q: %w", stem, err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	return paths, nil
}
