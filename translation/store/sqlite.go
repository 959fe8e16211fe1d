package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS client_storage (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLite is a file-backed Store used outside the Encore runtime.
type SQLite struct {
	db   *sql.DB
	stmt statements
	opts options
}

// OpenSQLite opens (or creates) the database at path and ensures the table.
func OpenSQLite(path string, opts ...Option) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("make storage dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range []string{"PRAGMA journal_mode = WAL;", sqliteSchema} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
	}
	return &SQLite{db: db, stmt: newStatements(sq.Question), opts: buildOptions(opts)}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.stmt.load(key)
	if err != nil {
		return nil, fmt.Errorf("build load: %w", err)
	}
	var value []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLite) Save(ctx context.Context, key string, data []byte) error {
	if err := s.opts.checkQuota(data); err != nil {
		return err
	}
	query, args, err := s.stmt.save(key, data)
	if err != nil {
		return fmt.Errorf("build save: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	query, args, err := s.stmt.remove(key)
	if err != nil {
		return fmt.Errorf("build remove: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
