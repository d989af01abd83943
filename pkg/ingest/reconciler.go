package ingest

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/lectern-dev/lectern/pkg/content"
	"github.com/lectern-dev/lectern/pkg/db"
	"github.com/lectern-dev/lectern/pkg/feed"
)

// Outcome aggregates per-feed counters for one refresh. It is produced fresh
// on every refresh call and used only for reporting, never persisted.
type Outcome struct {
	FeedID          int64  `json:"feed_id"`
	FeedTitle       string `json:"feed_title"`
	Success         bool   `json:"success"`
	Error           string `json:"error,omitempty"`
	Items           int    `json:"items"`
	NewItems        int    `json:"new_items"`
	DuplicateTitles int    `json:"duplicate_titles"`
	FilteredItems   int    `json:"filtered_items"`
	TooOldItems     int    `json:"too_old_items"`
	ContentFetched  int    `json:"content_fetched"`
	ContentFailed   int    `json:"content_failed"`
}

// TitleSet tracks item titles across all feeds for the coarse cross-feed
// dedup pass. It is seeded from storage at the start of a refresh batch and
// grown in-memory as the batch proceeds, so duplicates within a single feed
// document are caught too. Matching is on the exact title string.
type TitleSet struct {
	titles map[string]struct{}
}

// NewTitleSet builds a set from the given titles
func NewTitleSet(titles []string) *TitleSet {
	set := &TitleSet{titles: make(map[string]struct{}, len(titles))}
	for _, title := range titles {
		set.titles[title] = struct{}{}
	}
	return set
}

// Has reports whether the title was seen before
func (s *TitleSet) Has(title string) bool {
	_, ok := s.titles[title]
	return ok
}

// Add records a title as seen
func (s *TitleSet) Add(title string) {
	s.titles[title] = struct{}{}
}

// Len returns the number of tracked titles
func (s *TitleSet) Len() int {
	return len(s.titles)
}

// Reconcile runs the per-entry decision pipeline for one parsed feed, in feed
// document order. Each entry is either upserted or rejected as
// duplicate-by-title, filtered, or too old; the checks apply in exactly that
// order. Entries whose fields cannot be resolved are logged and skipped
// without aborting the batch. Survivors of a feed with the fetch-content
// policy are queued and the content batch runs after the entry loop.
func (r *Refresher) Reconcile(ctx context.Context, f db.Feed, entries []*gofeed.Item,
	titles *TitleSet, keywords []string, cutoff time.Time) *Outcome {

	outcome := &Outcome{FeedID: f.ID, FeedTitle: f.Title, Success: true, Items: len(entries)}

	var queue []content.QueuedItem
	for _, entry := range entries {
		if entry == nil {
			continue
		}

		fields := feed.ExtractFields(entry)
		if fields.GUID == "" {
			// guid falls back to link and title, so an empty guid means the
			// entry carried no usable identity at all
			log.Printf("[WARN] skipping entry without guid, link or title in feed %q", f.Title)
			continue
		}

		if titles.Has(fields.Title) {
			outcome.DuplicateTitles++
			continue
		}

		if matchKeyword(fields, keywords) != "" {
			outcome.FilteredItems++
			continue
		}

		if fields.PubDate.Before(cutoff) {
			outcome.TooOldItems++
			continue
		}

		item := &db.Item{
			FeedID:      f.ID,
			GUID:        fields.GUID,
			Title:       titleOrDefault(fields.Title),
			Link:        fields.Link,
			Description: fields.Description,
			ImageURL:    fields.ImageURL,
			PubDate:     fields.PubDate,
		}

		changed, err := r.store.UpsertItem(ctx, item)
		if err != nil {
			log.Printf("[WARN] failed to upsert item %q in feed %q: %v", fields.GUID, f.Title, err)
			continue
		}

		titles.Add(fields.Title)
		if !changed {
			continue
		}
		outcome.NewItems++

		if f.FetchContent && fields.Link != "" {
			// the upsert does not report the id of an updated row, so identity
			// comes from a re-read by the natural key
			stored, err := r.store.GetItemByGUID(ctx, f.ID, fields.GUID)
			if err != nil {
				log.Printf("[WARN] failed to re-read item %q in feed %q: %v", fields.GUID, f.Title, err)
				continue
			}
			if !stored.FullContent.Valid && stored.Link != "" {
				queue = append(queue, content.QueuedItem{ID: stored.ID, Link: stored.Link})
			}
		}
	}

	if len(queue) > 0 {
		stats := r.batcher.FetchAll(ctx, queue, func(ctx context.Context, itemID int64, text string, ttr int64) error {
			return r.store.UpdateItemContent(ctx, itemID, text, ttr)
		})
		outcome.ContentFetched = stats.Fetched
		outcome.ContentFailed = stats.Failed
	}

	return outcome
}

// matchKeyword returns the first keyword contained in the entry's title or
// link, case-insensitively, or empty when nothing matches
func matchKeyword(fields feed.ItemFields, keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	title := strings.ToLower(fields.Title)
	link := strings.ToLower(fields.Link)
	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		if kw == "" {
			continue
		}
		if strings.Contains(title, kw) || strings.Contains(link, kw) {
			return keyword
		}
	}
	return ""
}

func titleOrDefault(title string) string {
	if title == "" {
		return "Untitled"
	}
	return title
}
