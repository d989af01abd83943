package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory database with the schema applied
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := New(Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, database.Close())
	})
	return database
}

// makeTestFeed inserts a feed with a unique url
func makeTestFeed(t *testing.T, database *DB, title string) *Feed {
	t.Helper()

	feed := &Feed{
		Title: title,
		URL:   fmt.Sprintf("https://example.com/%s.xml", title),
		Color: "#3b82f6",
	}
	require.NoError(t, database.CreateFeed(context.Background(), feed))
	return feed
}

func TestNew(t *testing.T) {
	database := setupTestDB(t)

	require.NoError(t, database.Ping(context.Background()))

	// schema init creates the default folder
	folder, err := database.GetDefaultFolder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Default", folder.Label)
	assert.True(t, folder.IsDefault)
}

func TestInTransaction(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		err := database.InTransaction(ctx, func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`INSERT INTO folders (label, icon) VALUES ('tech', 'cpu')`)
			return err
		})
		require.NoError(t, err)

		folders, err := database.GetFolders(ctx)
		require.NoError(t, err)
		assert.Len(t, folders, 2) // default plus the new one
	})

	t.Run("rollback on error", func(t *testing.T) {
		err := database.InTransaction(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.Exec(`INSERT INTO folders (label, icon) VALUES ('doomed', 'x')`); err != nil {
				return err
			}
			return fmt.Errorf("boom")
		})
		require.Error(t, err)

		folders, err := database.GetFolders(ctx)
		require.NoError(t, err)
		assert.Len(t, folders, 2) // rolled back, count unchanged
	})
}
