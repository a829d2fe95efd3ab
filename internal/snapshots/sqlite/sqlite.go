// Package sqlite stores snapshots in a single table of a pure-Go SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
)

var _ snapshots.Backend = (*Backend)(nil)

// Backend keeps one row per resource in the snapshots table.
type Backend struct {
	db   *sql.DB
	path string
}

// Open creates the database file (and its directory) when missing and
// applies the schema.
func Open(path string) (*Backend, error) {
	if path == "" {
		return nil, errors.New("sqlite path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	b := &Backend{db: db, path: path}
	if err := b.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return b, nil
}

func (b *Backend) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			body BLOB NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := b.db.Exec(schema)
	return err
}

// Path returns the database file location.
func (b *Backend) Path() string {
	return b.path
}

// Load returns the stored body or snapshots.ErrNotFound.
func (b *Backend) Load(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	err := b.db.QueryRowContext(ctx, "SELECT body FROM snapshots WHERE name = ?", name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, snapshots.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select snapshot: %w", err)
	}
	return body, nil
}

// Save upserts the row for name in one statement.
func (b *Backend) Save(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("%w %q", snapshots.ErrInvalidName, name)
	}
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// List returns every stored resource name, sorted.
func (b *Backend) List(ctx context.Context) ([]string, error) {
	rows, err := b.db.QueryContext(ctx, "SELECT name FROM snapshots ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database connection.
func (b *Backend) Close() error {
	return b.db.Close()
}
