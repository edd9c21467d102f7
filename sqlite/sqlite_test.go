package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sitemapper"
	"github.com/fwojciec/sitemapper/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()

		var crawlCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM crawls").Scan(&crawlCount)
		require.NoError(t, err)

		var urlCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM crawl_urls").Scan(&urlCount)
		require.NoError(t, err)
	})

	t.Run("reopens an existing database", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/history.db"
		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("stamps the schema version", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var version int
		err := db.QueryRowContext(context.Background(), "PRAGMA user_version").Scan(&version)
		require.NoError(t, err)
		assert.Equal(t, sqlite.SchemaVersion, version)
	})

	t.Run("refuses a database from a newer schema", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/newer.db"
		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(context.Background(), "PRAGMA user_version = 99")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		err = db.Open()

		require.Error(t, err)
		assert.Equal(t, sitemapper.ECONFLICT, sitemapper.ErrorCode(err))
	})

	t.Run("enforces foreign keys", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		_, err := db.ExecContext(context.Background(),
			"INSERT INTO crawl_urls (crawl_id, position, url) VALUES ('missing', 0, 'http://www.example.com/')")
		require.Error(t, err)
	})
}
