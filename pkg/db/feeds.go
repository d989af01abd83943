package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// CreateFeed creates a new feed
func (db *DB) CreateFeed(ctx context.Context, feed *Feed) error {
	query := `
		INSERT INTO feeds (title, url, icon_url, color, fetch_content, folder_id)
		VALUES (:title, :url, :icon_url, :color, :fetch_content, :folder_id)
	`
	result, err := db.conn.NamedExecContext(ctx, query, feed)
	if err != nil {
		return fmt.Errorf("insert feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// GetFeed retrieves a feed by ID
func (db *DB) GetFeed(ctx context.Context, id int64) (*Feed, error) {
	var feed Feed
	query := `SELECT * FROM feeds WHERE id = ?`
	err := db.conn.GetContext(ctx, &feed, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feed %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return &feed, nil
}

// GetFeeds retrieves all feeds ordered by title
func (db *DB) GetFeeds(ctx context.Context) ([]Feed, error) {
	var feeds []Feed
	query := `SELECT * FROM feeds ORDER BY title`
	err := db.conn.SelectContext(ctx, &feeds, query)
	if err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}
	return feeds, nil
}

// UpdateFeed updates a feed's user-editable attributes
func (db *DB) UpdateFeed(ctx context.Context, feed *Feed) error {
	feed.UpdatedAt = time.Now()
	query := `
		UPDATE feeds
		SET title = :title,
		    url = :url,
		    icon_url = :icon_url,
		    color = :color,
		    fetch_content = :fetch_content,
		    folder_id = :folder_id,
		    updated_at = :updated_at
		WHERE id = :id
	`
	result, err := db.conn.NamedExecContext(ctx, query, feed)
	if err != nil {
		return fmt.Errorf("update feed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("feed %d: %w", feed.ID, ErrNotFound)
	}
	return nil
}

// UpdateFeedFetched records a successful fetch and clears error state
func (db *DB) UpdateFeedFetched(ctx context.Context, feedID int64, fetchedAt time.Time) error {
	query := `
		UPDATE feeds
		SET last_fetched = ?, last_error = '', error_count = 0, updated_at = ?
		WHERE id = ?
	`
	_, err := db.conn.ExecContext(ctx, query, fetchedAt.UTC(), time.Now().UTC(), feedID)
	if err != nil {
		return fmt.Errorf("update feed fetched: %w", err)
	}
	return nil
}

// UpdateFeedError records a failed fetch
func (db *DB) UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error {
	query := `
		UPDATE feeds
		SET last_error = ?, error_count = error_count + 1, updated_at = ?
		WHERE id = ?
	`
	_, err := db.conn.ExecContext(ctx, query, errMsg, time.Now().UTC(), feedID)
	if err != nil {
		return fmt.Errorf("update feed error: %w", err)
	}
	return nil
}

// DeleteFeed deletes a feed; its items go with it via the cascade
func (db *DB) DeleteFeed(ctx context.Context, id int64) error {
	query := `DELETE FROM feeds WHERE id = ?`
	result, err := db.conn.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("feed %d: %w", id, ErrNotFound)
	}
	return nil
}
