package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	title  TEXT PRIMARY KEY,
	status TEXT NOT NULL
);
`

// SQLite stores the collection as rows of a single tasks table.
// Save rewrites the whole table in one transaction, so it keeps the same
// whole-collection contract as JSONFile.
type SQLite struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLite returns a store for the database at path. The file and the tasks
// table are created by Init or by the first Save. The caller is responsible for
// calling Close.
func NewSQLite(path string, logger *slog.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // prevent SQLITE_BUSY
	return &SQLite{db: db, path: path, logger: orDiscard(logger)}, nil
}

// Close releases the underlying database connection.
func (s *SQLite) Close() error { return s.db.Close() }

// Load returns every row of the tasks table. A missing database file is
// reported as ErrNotFound without creating it.
func (s *SQLite) Load(ctx context.Context) (Collection, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, &Error{Op: "stat", Path: s.path, Err: err}
	}

	exists, err := s.hasTable(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT title, status FROM tasks`)
	if err != nil {
		return nil, &Error{Op: "query", Path: s.path, Err: err}
	}
	defer rows.Close()

	c := make(Collection)
	for rows.Next() {
		var title, status string
		if err := rows.Scan(&title, &status); err != nil {
			return nil, &Error{Op: "scan", Path: s.path, Err: err}
		}
		c[title] = status
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "query", Path: s.path, Err: err}
	}

	s.logger.Debug("state loaded", "path", s.path, "tasks", len(c))
	return c, nil
}

// Save replaces the table contents with c.
func (s *SQLite) Save(ctx context.Context, c Collection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &Error{Op: "begin", Path: s.path, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return &Error{Op: "schema", Path: s.path, Err: err}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks (title, status) VALUES (?, ?)`)
	if err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}
	defer stmt.Close()

	for _, title := range c.Titles() {
		if _, err := stmt.ExecContext(ctx, title, c[title]); err != nil {
			return &Error{Op: "write", Path: s.path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &Error{Op: "commit", Path: s.path, Err: err}
	}

	s.logger.Debug("state saved", "path", s.path, "tasks", len(c))
	return nil
}

// Init creates the database directory and the tasks table if they do not
// exist.
func (s *SQLite) Init(ctx context.Context) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return false, &Error{Op: "mkdir", Path: s.path, Err: err}
	}
	exists, err := s.hasTable(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return false, &Error{Op: "schema", Path: s.path, Err: err}
	}
	return true, nil
}

func (s *SQLite) hasTable(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`,
	).Scan(&n)
	if err != nil {
		return false, &Error{Op: "query", Path: s.path, Err: err}
	}
	return n > 0, nil
}
