package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// UpsertItem inserts an item or, on a (feed_id, guid) conflict, updates the
// mutable fields of the existing row. It reports whether the write actually
// changed anything: a conflicting row with identical data affects no rows, so
// periodic re-ingestion of an unchanged feed does not look like new items.
// The row id of an updated row is not reported; callers needing identity must
// re-read by the natural key with GetItemByGUID.
func (db *DB) UpsertItem(ctx context.Context, item *Item) (changed bool, err error) {
	query := `
		INSERT INTO items (feed_id, guid, title, link, description, image_url, pub_date)
		VALUES (:feed_id, :guid, :title, :link, :description, :image_url, :pub_date)
		ON CONFLICT(feed_id, guid) DO UPDATE SET
			title = excluded.title,
			link = excluded.link,
			description = excluded.description,
			image_url = excluded.image_url,
			pub_date = excluded.pub_date,
			updated_at = CURRENT_TIMESTAMP
		WHERE items.title != excluded.title
		   OR items.link != excluded.link
		   OR items.description != excluded.description
		   OR items.image_url != excluded.image_url
		   OR items.pub_date != excluded.pub_date
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		result, execErr := db.conn.NamedExecContext(ctx, query, item)
		if execErr != nil {
			if isLockError(execErr) {
				return execErr // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert item: %w", execErr)}
		}

		rowsAffected, raErr := result.RowsAffected()
		if raErr != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", raErr)}
		}
		changed = rowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// GetItemByGUID retrieves an item by its natural key
func (db *DB) GetItemByGUID(ctx context.Context, feedID int64, guid string) (*Item, error) {
	var item Item
	query := `SELECT * FROM items WHERE feed_id = ? AND guid = ?`
	err := db.conn.GetContext(ctx, &item, query, feedID, guid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %d/%s: %w", feedID, guid, ErrNotFound)
		}
		return nil, fmt.Errorf("get item by guid: %w", err)
	}
	return &item, nil
}

// GetItem retrieves an item by ID
func (db *DB) GetItem(ctx context.Context, id int64) (*Item, error) {
	var item Item
	query := `SELECT * FROM items WHERE id = ?`
	err := db.conn.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &item, nil
}

// GetAllTitles returns the titles of every stored item, across all feeds.
// Seeds the cross-feed title dedup set used during ingestion.
func (db *DB) GetAllTitles(ctx context.Context) ([]string, error) {
	var titles []string
	query := `SELECT title FROM items`
	err := db.conn.SelectContext(ctx, &titles, query)
	if err != nil {
		return nil, fmt.Errorf("get all titles: %w", err)
	}
	return titles, nil
}

// GetItems retrieves items joined with feed display attributes, newest first
func (db *DB) GetItems(ctx context.Context, limit, offset int) ([]ItemWithFeed, error) {
	var items []ItemWithFeed
	query := `
		SELECT items.*, feeds.title AS feed_title, feeds.color AS feed_color, feeds.icon_url AS feed_icon
		FROM items
		JOIN feeds ON items.feed_id = feeds.id
		ORDER BY items.pub_date DESC, items.id DESC
		LIMIT ? OFFSET ?
	`
	err := db.conn.SelectContext(ctx, &items, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	return items, nil
}

// GetItemsByFeed retrieves items for a specific feed, newest first
func (db *DB) GetItemsByFeed(ctx context.Context, feedID int64, limit, offset int) ([]ItemWithFeed, error) {
	var items []ItemWithFeed
	query := `
		SELECT items.*, feeds.title AS feed_title, feeds.color AS feed_color, feeds.icon_url AS feed_icon
		FROM items
		JOIN feeds ON items.feed_id = feeds.id
		WHERE items.feed_id = ?
		ORDER BY items.pub_date DESC, items.id DESC
		LIMIT ? OFFSET ?
	`
	err := db.conn.SelectContext(ctx, &items, query, feedID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get items by feed: %w", err)
	}
	return items, nil
}

// GetItemsByFolder retrieves items for all feeds in a folder, newest first
func (db *DB) GetItemsByFolder(ctx context.Context, folderID int64, limit, offset int) ([]ItemWithFeed, error) {
	var items []ItemWithFeed
	query := `
		SELECT items.*, feeds.title AS feed_title, feeds.color AS feed_color, feeds.icon_url AS feed_icon
		FROM items
		JOIN feeds ON items.feed_id = feeds.id
		WHERE feeds.folder_id = ?
		ORDER BY items.pub_date DESC, items.id DESC
		LIMIT ? OFFSET ?
	`
	err := db.conn.SelectContext(ctx, &items, query, folderID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get items by folder: %w", err)
	}
	return items, nil
}

// SearchItems finds items whose title, description or extracted content
// contains the query string
func (db *DB) SearchItems(ctx context.Context, q string, limit, offset int) ([]ItemWithFeed, error) {
	var items []ItemWithFeed
	pattern := "%" + q + "%"
	query := `
		SELECT items.*, feeds.title AS feed_title, feeds.color AS feed_color, feeds.icon_url AS feed_icon
		FROM items
		JOIN feeds ON items.feed_id = feeds.id
		WHERE items.title LIKE ? OR items.description LIKE ? OR items.full_content LIKE ?
		ORDER BY items.pub_date DESC, items.id DESC
		LIMIT ? OFFSET ?
	`
	err := db.conn.SelectContext(ctx, &items, query, pattern, pattern, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

// GetItemsWithoutContent returns id and link of items in a feed that lack
// extracted full content
func (db *DB) GetItemsWithoutContent(ctx context.Context, feedID int64) ([]Item, error) {
	var items []Item
	query := `SELECT * FROM items WHERE feed_id = ? AND full_content IS NULL AND link != ''`
	err := db.conn.SelectContext(ctx, &items, query, feedID)
	if err != nil {
		return nil, fmt.Errorf("get items without content: %w", err)
	}
	return items, nil
}

// UpdateItemContent stores extracted full content and estimated time-to-read
func (db *DB) UpdateItemContent(ctx context.Context, itemID int64, content string, ttr int64) error {
	query := `UPDATE items SET full_content = ?, ttr = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := db.conn.ExecContext(ctx, query, content, ttr, itemID)
	if err != nil {
		return fmt.Errorf("update item content: %w", err)
	}
	return nil
}

// MarkItemRead sets the read timestamp on an item
func (db *DB) MarkItemRead(ctx context.Context, itemID int64) error {
	query := `UPDATE items SET read_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := db.conn.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("mark item read: %w", err)
	}
	return nil
}

// MarkItemUnread clears the read timestamp on an item
func (db *DB) MarkItemUnread(ctx context.Context, itemID int64) error {
	query := `UPDATE items SET read_at = NULL WHERE id = ?`
	_, err := db.conn.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("mark item unread: %w", err)
	}
	return nil
}

// BulkMarkRead marks a set of items read with a single statement
func (db *DB) BulkMarkRead(ctx context.Context, itemIDs []int64) error {
	if len(itemIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE items SET read_at = CURRENT_TIMESTAMP WHERE id IN (?)`, itemIDs)
	if err != nil {
		return fmt.Errorf("build bulk read query: %w", err)
	}
	_, err = db.conn.ExecContext(ctx, db.conn.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("bulk mark read: %w", err)
	}
	return nil
}

// DeleteItemsOlderThan purges items published before the cutoff, returning the
// number of deleted rows
func (db *DB) DeleteItemsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM items WHERE pub_date < ?`
	result, err := db.conn.ExecContext(ctx, query, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete old items: %w", err)
	}
	return result.RowsAffected()
}

// UnreadCounts returns the number of unread items per feed and in total
func (db *DB) UnreadCounts(ctx context.Context) (perFeed map[int64]int, total int, err error) {
	rows := []struct {
		FeedID int64 `db:"feed_id"`
		Count  int   `db:"count"`
	}{}
	query := `SELECT feed_id, COUNT(*) AS count FROM items WHERE read_at IS NULL GROUP BY feed_id`
	if err := db.conn.SelectContext(ctx, &rows, query); err != nil {
		return nil, 0, fmt.Errorf("get unread counts: %w", err)
	}

	perFeed = make(map[int64]int, len(rows))
	for _, row := range rows {
		perFeed[row.FeedID] = row.Count
		total += row.Count
	}
	return perFeed, total, nil
}
