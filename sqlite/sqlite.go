// Package sqlite provides a SQLite-backed implementation of redlens.Archive.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait 5 seconds before failing on lock contention instead of
	// returning "database is locked" immediately.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode allows concurrent reads during writes. Not supported for
	// in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			subreddit TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			selftext TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			num_comments INTEGER NOT NULL DEFAULT 0,
			created_utc REAL NOT NULL DEFAULT 0,
			permalink TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			link_flair_text TEXT NOT NULL DEFAULT '',
			saved_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS comments (
			id TEXT NOT NULL,
			post_id TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			created_utc REAL NOT NULL DEFAULT 0,
			depth INTEGER NOT NULL DEFAULT 0,
			saved_at TEXT NOT NULL,
			PRIMARY KEY (id, post_id)
		);

		CREATE TABLE IF NOT EXISTS subreddits (
			display_name TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			public_description TEXT NOT NULL DEFAULT '',
			subscribers INTEGER NOT NULL DEFAULT 0,
			active_users INTEGER NOT NULL DEFAULT 0,
			over18 INTEGER NOT NULL DEFAULT 0,
			subreddit_type TEXT NOT NULL DEFAULT 'public',
			saved_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			content_hash TEXT NOT NULL DEFAULT '',
			bytes INTEGER NOT NULL DEFAULT 0,
			fetched_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_posts_subreddit ON posts(subreddit);
		CREATE INDEX IF NOT EXISTS idx_posts_author ON posts(author);
		CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id);
		CREATE INDEX IF NOT EXISTS idx_snapshots_url ON snapshots(url);
	`

	_, err := db.db.Exec(schema)
	return err
}
