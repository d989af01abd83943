package content

import (
	"context"
	"log"
	"time"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Extractor extracts readable content from an article URL
type Extractor interface {
	Extract(ctx context.Context, url string) (*Result, error)
}

// QueuedItem identifies a stored item awaiting content extraction
type QueuedItem struct {
	ID   int64
	Link string
}

// BatchStats aggregates the outcome of one content-fetch batch
type BatchStats struct {
	Fetched int
	Failed  int
}

// SaveFunc persists extracted content for an item
type SaveFunc func(ctx context.Context, itemID int64, content string, ttr int64) error

// Batcher fetches content for queued items strictly sequentially with a fixed
// inter-item delay. The sequential pace is deliberate backpressure towards
// origin servers, not a performance shortcut.
type Batcher struct {
	extractor Extractor
	delay     time.Duration
}

// NewBatcher creates a batcher; delay is the pause between consecutive items
// (zero disables it, tests rely on that)
func NewBatcher(extractor Extractor, delay time.Duration) *Batcher {
	return &Batcher{extractor: extractor, delay: delay}
}

// FetchAll processes every queued item in order. A per-item extraction or save
// failure is counted and logged but never aborts the remaining items. Returns
// once all items were attempted or the context is canceled.
func (b *Batcher) FetchAll(ctx context.Context, items []QueuedItem, save SaveFunc) BatchStats {
	var stats BatchStats

	for i, item := range items {
		if ctx.Err() != nil {
			stats.Failed += len(items) - i
			return stats
		}

		result, err := b.extractor.Extract(ctx, item.Link)
		if err != nil {
			log.Printf("[WARN] content extraction failed for item %d (%s): %v", item.ID, item.Link, err)
			stats.Failed++
		} else if err := save(ctx, item.ID, result.Content, result.TTR); err != nil {
			log.Printf("[WARN] failed to save content for item %d: %v", item.ID, err)
			stats.Failed++
		} else {
			stats.Fetched++
		}

		// pause between items, skipped after the last one
		if b.delay > 0 && i < len(items)-1 {
			select {
			case <-time.After(b.delay):
			case <-ctx.Done():
				stats.Failed += len(items) - i - 1
				return stats
			}
		}
	}

	return stats
}
