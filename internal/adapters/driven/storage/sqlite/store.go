// Package sqlite persists the download history in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/bigdata-com/bigdata-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.DownloadStore = (*Store)(nil)

// Store is the SQLite-backed download history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.bigdata/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".bigdata", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save records a completed download.
func (s *Store) Save(ctx context.Context, dl domain.Download) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO downloads (id, document_id, headline, path, size, redirected, downloaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, dl.ID, dl.DocumentID, dl.Headline, dl.Path, dl.Size, boolToInt(dl.Redirected),
		dl.DownloadedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving download: %w", err)
	}
	return nil
}

// Get returns the most recent download of a document.
func (s *Store) Get(ctx context.Context, documentID string) (*domain.Download, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, document_id, headline, path, size, redirected, downloaded_at
		FROM downloads
		WHERE document_id = ?
		ORDER BY downloaded_at DESC
		LIMIT 1
	`, documentID)

	dl, err := scanDownload(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning download: %w", err)
	}
	return dl, nil
}

// List returns all recorded downloads, most recent first.
func (s *Store) List(ctx context.Context) ([]domain.Download, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, headline, path, size, redirected, downloaded_at
		FROM downloads
		ORDER BY downloaded_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing downloads: %w", err)
	}
	defer rows.Close()

	var downloads []domain.Download
	for rows.Next() {
		dl, err := scanDownload(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning download: %w", err)
		}
		downloads = append(downloads, *dl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating downloads: %w", err)
	}

	return downloads, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDownload(row scanner) (*domain.Download, error) {
	var dl domain.Download
	var redirected int
	var downloadedAt sql.NullTime
	if err := row.Scan(&dl.ID, &dl.DocumentID, &dl.Headline, &dl.Path,
		&dl.Size, &redirected, &downloadedAt); err != nil {
		return nil, err
	}
	dl.Redirected = redirected != 0
	if downloadedAt.Valid {
		dl.DownloadedAt = downloadedAt.Time
	}
	return &dl, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_downloads.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}
