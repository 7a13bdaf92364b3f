package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/notemill/notemill/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/notemill/notemill/internal/core/domain"
	"github.com/notemill/notemill/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore is a SQLite-backed implementation of driven.StateStore.
type StateStore struct {
	db   *sql.DB
	path string
}

// NewStateStore creates a SQLite state store at the specified data
// directory. If dataDir is empty, defaults to ~/.notemill/data/state.db.
func NewStateStore(dataDir string) (*StateStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".notemill", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "state.db")

	// Open database with WAL mode for better concurrency.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &StateStore{
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
func (s *StateStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *StateStore) Path() string {
	return s.path
}

// Get retrieves the export state for a page.
func (s *StateStore) Get(ctx context.Context, pageID string) (*driven.ExportState, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT page_id, last_edited, path, exported_at
		FROM export_states
		WHERE page_id = ?
	`, pageID)

	var state driven.ExportState
	err := row.Scan(&state.PageID, &state.LastEdited, &state.Path, &state.ExportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting export state: %w", err)
	}
	return &state, nil
}

// Save stores or updates the export state for a page.
func (s *StateStore) Save(ctx context.Context, state driven.ExportState) error {
	if state.ExportedAt.IsZero() {
		state.ExportedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO export_states (page_id, last_edited, path, exported_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(page_id) DO UPDATE SET
			last_edited = excluded.last_edited,
			path = excluded.path,
			exported_at = excluded.exported_at
	`, state.PageID, state.LastEdited.UTC(), state.Path, state.ExportedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving export state: %w", err)
	}
	return nil
}

// Delete removes the export state for a page. Deleting an unknown page
// is not an error.
func (s *StateStore) Delete(ctx context.Context, pageID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM export_states WHERE page_id = ?`, pageID); err != nil {
		return fmt.Errorf("deleting export state: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (s *StateStore) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1).
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
