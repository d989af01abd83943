package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	itemsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lectern_items_processed_total",
		Help: "Number of feed entries processed during ingestion, by decision",
	}, []string{"decision"})

	contentFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lectern_content_fetches_total",
		Help: "Number of full-content extraction attempts, by result",
	}, []string{"result"})

	refreshErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lectern_feed_refresh_errors_total",
		Help: "Number of feed refreshes that failed to fetch or parse",
	})
)

func init() {
	prometheus.MustRegister(itemsProcessed, contentFetches, refreshErrors)
}

// observeOutcome rolls one feed's outcome counters into the process metrics
func observeOutcome(o *Outcome) {
	itemsProcessed.WithLabelValues("new").Add(float64(o.NewItems))
	itemsProcessed.WithLabelValues("duplicate_title").Add(float64(o.DuplicateTitles))
	itemsProcessed.WithLabelValues("filtered").Add(float64(o.FilteredItems))
	itemsProcessed.WithLabelValues("too_old").Add(float64(o.TooOldItems))
	contentFetches.WithLabelValues("fetched").Add(float64(o.ContentFetched))
	contentFetches.WithLabelValues("failed").Add(float64(o.ContentFailed))
}
