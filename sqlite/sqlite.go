// Package sqlite provides SQLite-based storage for sitemapper crawl history.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fwojciec/sitemapper"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SchemaVersion is stored in PRAGMA user_version of every history database
// this package creates.
const SchemaVersion = 1

// memoryPath opens a private in-memory database. WAL cannot be used there.
const memoryPath = ":memory:"

// pragma is a connection setting applied once after the database is opened.
type pragma struct {
	stmt     string
	desc     string
	fileOnly bool
}

// SQLite allows a single writer, so a crawl that records while another
// process reads history waits for the lock instead of failing.
var pragmas = []pragma{
	{stmt: "PRAGMA busy_timeout = 5000", desc: "set busy timeout"},
	{stmt: "PRAGMA journal_mode = WAL", desc: "enable WAL mode", fileOnly: true},
	{stmt: "PRAGMA foreign_keys = ON", desc: "enable foreign keys"},
}

const schema = `
CREATE TABLE IF NOT EXISTS crawls (
	id TEXT PRIMARY KEY,
	seed_url TEXT NOT NULL,
	host TEXT NOT NULL,
	max_depth INTEGER NOT NULL DEFAULT 0,
	max_links_per_page INTEGER NOT NULL DEFAULT 0,
	levels INTEGER NOT NULL DEFAULT 0,
	fetched INTEGER NOT NULL DEFAULT 0,
	failed INTEGER NOT NULL DEFAULT 0,
	unfetched INTEGER NOT NULL DEFAULT 0,
	max_depth_reached INTEGER NOT NULL DEFAULT 0,
	canceled INTEGER NOT NULL DEFAULT 0,
	output_path TEXT NOT NULL DEFAULT '',
	started_at TEXT NOT NULL,
	finished_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS crawl_urls (
	crawl_id TEXT NOT NULL REFERENCES crawls(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	url TEXT NOT NULL,
	PRIMARY KEY (crawl_id, position)
);

CREATE INDEX IF NOT EXISTS idx_crawls_host ON crawls(host);
CREATE INDEX IF NOT EXISTS idx_crawls_started_at ON crawls(started_at);
`

// DB is the crawl history database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for the file at path. Use ":memory:" for a database
// that lives only as long as the DB is open.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects to the database and migrates it to SchemaVersion.
// Returns ECONFLICT when the file was written by a newer schema.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.init(conn); err != nil {
		conn.Close()
		return err
	}
	db.db = conn
	return nil
}

func (db *DB) init(conn *sql.DB) error {
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("failed to connect to history database %s: %w", db.path, err)
	}

	for _, p := range pragmas {
		if p.fileOnly && db.path == memoryPath {
			continue
		}
		if _, err := conn.Exec(p.stmt); err != nil {
			return fmt.Errorf("failed to %s: %w", p.desc, err)
		}
	}

	return migrate(conn)
}

// migrate creates the schema in an empty database and stamps its version.
func migrate(conn *sql.DB) error {
	var version int
	if err := conn.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > SchemaVersion {
		return sitemapper.Errorf(sitemapper.ECONFLICT,
			"history database has schema version %d, this build supports %d", version, SchemaVersion)
	}

	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if version < SchemaVersion {
		if _, err := conn.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction. CreateCrawl uses one so a crawl and its
// URLs are recorded together or not at all.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}
