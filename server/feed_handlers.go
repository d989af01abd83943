package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/lectern-dev/lectern/pkg/db"
	"github.com/lectern-dev/lectern/pkg/ingest"
)

// feedRequest is the payload for creating or updating a feed subscription
type feedRequest struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	FetchContent bool   `json:"fetch_content"`
	FolderID     *int64 `json:"folder_id"`
}

func (fr *feedRequest) validate() error {
	if strings.TrimSpace(fr.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(fr.URL) == "" {
		return errors.New("url is required")
	}
	if !strings.HasPrefix(fr.URL, "http://") && !strings.HasPrefix(fr.URL, "https://") {
		return fmt.Errorf("url must be http or https, got %q", fr.URL)
	}
	return nil
}

// listFeedsHandler returns all subscribed feeds
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.store.GetFeeds(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, feeds)
}

// getFeedHandler returns a single feed by id
func (s *Server) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	feed, err := s.store.GetFeed(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, feed)
}

// createFeedHandler subscribes a new feed, detecting its site icon on the way
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	iconRes := s.icons.Detect(r.Context(), req.URL)

	feed := &db.Feed{
		Title:        strings.TrimSpace(req.Title),
		URL:          strings.TrimSpace(req.URL),
		IconURL:      iconRes.IconURL,
		Color:        iconRes.Color,
		FetchContent: req.FetchContent,
	}
	if req.FolderID != nil {
		feed.FolderID = sql.NullInt64{Int64: *req.FolderID, Valid: true}
	}

	if err := s.store.CreateFeed(r.Context(), feed); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	log.Printf("[INFO] subscribed feed %q (%s)", feed.Title, feed.URL)
	RenderJSON(w, r, http.StatusCreated, feed)
}

// updateFeedHandler changes a feed's title, url, folder or content mode
func (s *Server) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	feed, err := s.store.GetFeed(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	feed.Title = strings.TrimSpace(req.Title)
	feed.URL = strings.TrimSpace(req.URL)
	feed.FetchContent = req.FetchContent
	feed.FolderID = sql.NullInt64{}
	if req.FolderID != nil {
		feed.FolderID = sql.NullInt64{Int64: *req.FolderID, Valid: true}
	}

	if err := s.store.UpdateFeed(r.Context(), feed); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, feed)
}

// deleteFeedHandler removes a feed and its items
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteFeed(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// refreshFeedHandler triggers an immediate refresh of one feed
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	outcome, err := s.refresher.RefreshFeed(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrRefreshInProgress):
			RenderError(w, r, err, http.StatusConflict)
		case errors.Is(err, db.ErrNotFound):
			RenderError(w, r, err, http.StatusNotFound)
		default:
			RenderError(w, r, err, http.StatusInternalServerError)
		}
		return
	}
	RenderJSON(w, r, http.StatusOK, outcome)
}

// refreshAllHandler triggers an immediate refresh of every feed
func (s *Server) refreshAllHandler(w http.ResponseWriter, r *http.Request) {
	outcomes, err := s.refresher.RefreshAll(r.Context())
	if err != nil {
		if errors.Is(err, ingest.ErrRefreshInProgress) {
			RenderError(w, r, err, http.StatusConflict)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, outcomes)
}

// detectIconHandler re-runs icon detection for a feed and stores the result
func (s *Server) detectIconHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	feed, err := s.store.GetFeed(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	iconRes := s.icons.Detect(r.Context(), feed.URL)
	feed.IconURL = iconRes.IconURL
	feed.Color = iconRes.Color

	if err := s.store.UpdateFeed(r.Context(), feed); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, feed)
}
