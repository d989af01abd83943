package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lectern-dev/lectern/pkg/content"
	"github.com/lectern-dev/lectern/pkg/db"
	"github.com/lectern-dev/lectern/pkg/feed"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/batcher.go -pkg mocks -skip-ensure -fmt goimports . Batcher

// ErrRefreshInProgress reports that another refresh batch holds the lock.
// Refreshes never overlap: an explicit user-triggered refresh arriving while
// the scheduled one runs is rejected instead of queued.
var ErrRefreshInProgress = errors.New("refresh already in progress")

// Store is the persistence surface the ingestion pipeline depends on
type Store interface {
	GetFeeds(ctx context.Context) ([]db.Feed, error)
	GetFeed(ctx context.Context, id int64) (*db.Feed, error)
	GetAllTitles(ctx context.Context) ([]string, error)
	GetFilterKeywords(ctx context.Context) ([]db.FilterKeyword, error)
	UpsertItem(ctx context.Context, item *db.Item) (changed bool, err error)
	GetItemByGUID(ctx context.Context, feedID int64, guid string) (*db.Item, error)
	UpdateItemContent(ctx context.Context, itemID int64, content string, ttr int64) error
	UpdateFeedFetched(ctx context.Context, feedID int64, fetchedAt time.Time) error
	UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error
	DeleteItemsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Parser fetches and parses one feed document
type Parser interface {
	Parse(ctx context.Context, url string) (*feed.ParsedFeed, error)
}

// Batcher fetches full content for queued items
type Batcher interface {
	FetchAll(ctx context.Context, items []content.QueuedItem, save content.SaveFunc) content.BatchStats
}

// Refresher sequences reconciliation across feeds. Feeds are processed one at
// a time, entries within a feed one at a time; origin servers are untrusted
// and rate-sensitive, so there is no fan-out.
type Refresher struct {
	store      Store
	parser     Parser
	batcher    Batcher
	maxAgeDays func() int

	busy sync.Mutex // held for the duration of one refresh batch
}

// NewRefresher creates a refresher. maxAgeDays is consulted at call time on
// every refresh and purge, so both read the same retention window.
func NewRefresher(store Store, parser Parser, batcher Batcher, maxAgeDays func() int) *Refresher {
	return &Refresher{store: store, parser: parser, batcher: batcher, maxAgeDays: maxAgeDays}
}

// cutoff computes the retention cutoff: articles published before it are
// rejected at ingestion and purged from storage
func (r *Refresher) cutoff() time.Time {
	days := r.maxAgeDays()
	if days <= 0 {
		days = 3
	}
	return time.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
}

// RefreshFeed refreshes a single feed by id, seeding a fresh dedup session
func (r *Refresher) RefreshFeed(ctx context.Context, feedID int64) (*Outcome, error) {
	if !r.busy.TryLock() {
		return nil, ErrRefreshInProgress
	}
	defer r.busy.Unlock()

	f, err := r.store.GetFeed(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}

	titles, keywords, err := r.seedSession(ctx)
	if err != nil {
		return nil, err
	}

	return r.refreshOne(ctx, *f, titles, keywords), nil
}

// RefreshAll refreshes every feed sequentially, preserving input order in the
// returned outcomes. A single feed's fetch failure is recorded in its outcome
// and never interrupts the remaining feeds.
func (r *Refresher) RefreshAll(ctx context.Context) ([]Outcome, error) {
	if !r.busy.TryLock() {
		return nil, ErrRefreshInProgress
	}
	defer r.busy.Unlock()

	feeds, err := r.store.GetFeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}

	titles, keywords, err := r.seedSession(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(feeds))
	for _, f := range feeds {
		if ctx.Err() != nil {
			return outcomes, ctx.Err()
		}
		log.Printf("[INFO] refreshing feed: %s", f.Title)
		outcomes = append(outcomes, *r.refreshOne(ctx, f, titles, keywords))
	}

	return outcomes, nil
}

// Purge deletes stored items older than the retention window, using the same
// call-time read of the configuration as the ingestion cutoff
func (r *Refresher) Purge(ctx context.Context) (int64, error) {
	deleted, err := r.store.DeleteItemsOlderThan(ctx, r.cutoff())
	if err != nil {
		return 0, fmt.Errorf("purge old items: %w", err)
	}
	if deleted > 0 {
		log.Printf("[INFO] purged %d items older than %d days", deleted, r.maxAgeDays())
	}
	return deleted, nil
}

// seedSession loads the cross-feed title set and the filter keywords once per
// refresh batch
func (r *Refresher) seedSession(ctx context.Context) (*TitleSet, []string, error) {
	storedTitles, err := r.store.GetAllTitles(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("seed title set: %w", err)
	}

	filterKeywords, err := r.store.GetFilterKeywords(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load filter keywords: %w", err)
	}
	keywords := make([]string, 0, len(filterKeywords))
	for _, fk := range filterKeywords {
		keywords = append(keywords, fk.Keyword)
	}

	return NewTitleSet(storedTitles), keywords, nil
}

// refreshOne fetches and reconciles one feed, converting a fetch or parse
// failure into a failed outcome instead of an error
func (r *Refresher) refreshOne(ctx context.Context, f db.Feed, titles *TitleSet, keywords []string) *Outcome {
	parsed, err := r.parser.Parse(ctx, f.URL)
	if err != nil {
		log.Printf("[WARN] failed to fetch feed %q (%s): %v", f.Title, f.URL, err)
		refreshErrors.Inc()
		if dbErr := r.store.UpdateFeedError(ctx, f.ID, err.Error()); dbErr != nil {
			log.Printf("[WARN] failed to record feed error: %v", dbErr)
		}
		return &Outcome{FeedID: f.ID, FeedTitle: f.Title, Success: false, Error: err.Error()}
	}

	outcome := r.Reconcile(ctx, f, parsed.Items, titles, keywords, r.cutoff())
	observeOutcome(outcome)

	if err := r.store.UpdateFeedFetched(ctx, f.ID, time.Now()); err != nil {
		log.Printf("[WARN] failed to record feed fetch time: %v", err)
	}

	if outcome.NewItems > 0 {
		log.Printf("[INFO] feed %q: %d new of %d items (dup %d, filtered %d, too old %d)",
			f.Title, outcome.NewItems, outcome.Items, outcome.DuplicateTitles,
			outcome.FilteredItems, outcome.TooOldItems)
	}
	return outcome
}
