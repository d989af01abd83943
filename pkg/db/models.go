package db

import (
	"database/sql"
	"time"
)

// Folder groups feeds in the reading sidebar
type Folder struct {
	ID        int64     `db:"id" json:"id"`
	Label     string    `db:"label" json:"label"`
	Icon      string    `db:"icon" json:"icon"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Feed represents a subscribed RSS/Atom source
type Feed struct {
	ID           int64         `db:"id" json:"id"`
	Title        string        `db:"title" json:"title"`
	URL          string        `db:"url" json:"url"`
	IconURL      string        `db:"icon_url" json:"icon_url"`
	Color        string        `db:"color" json:"color"`
	FetchContent bool          `db:"fetch_content" json:"fetch_content"`
	FolderID     sql.NullInt64 `db:"folder_id" json:"folder_id"`
	LastFetched  sql.NullTime  `db:"last_fetched" json:"last_fetched"`
	LastError    string        `db:"last_error" json:"last_error,omitempty"`
	ErrorCount   int           `db:"error_count" json:"error_count"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// Item represents one entry observed from a feed.
// The natural key is (feed_id, guid); re-ingesting the same key updates
// mutable fields instead of duplicating the row.
type Item struct {
	ID          int64          `db:"id" json:"id"`
	FeedID      int64          `db:"feed_id" json:"feed_id"`
	GUID        string         `db:"guid" json:"guid"`
	Title       string         `db:"title" json:"title"`
	Link        string         `db:"link" json:"link"`
	Description string         `db:"description" json:"description"`
	ImageURL    string         `db:"image_url" json:"image_url,omitempty"`
	FullContent sql.NullString `db:"full_content" json:"full_content"`
	TTR         sql.NullInt64  `db:"ttr" json:"ttr"`
	PubDate     time.Time      `db:"pub_date" json:"pub_date"`
	ReadAt      sql.NullTime   `db:"read_at" json:"read_at"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// ItemWithFeed is an item joined with its feed's display attributes
type ItemWithFeed struct {
	Item
	FeedTitle string `db:"feed_title" json:"feed_title"`
	FeedColor string `db:"feed_color" json:"feed_color"`
	FeedIcon  string `db:"feed_icon" json:"feed_icon"`
}

// FilterKeyword is a lower-cased substring suppressing matching items during ingestion
type FilterKeyword struct {
	ID        int64     `db:"id" json:"id"`
	Keyword   string    `db:"keyword" json:"keyword"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
