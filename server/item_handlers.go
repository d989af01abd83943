package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lectern-dev/lectern/pkg/db"
)

const (
	defaultItemsLimit = 50
	maxItemsLimit     = 200
)

// listItemsHandler returns items for the reading pane. Scope narrows by
// feed_id or folder_id, or a q parameter switches to substring search;
// limit/offset page through the result.
func (s *Server) listItemsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	var items []db.ItemWithFeed
	switch {
	case r.URL.Query().Get("q") != "":
		items, err = s.store.SearchItems(r.Context(), r.URL.Query().Get("q"), limit, offset)
	case r.URL.Query().Get("feed_id") != "":
		var feedID int64
		if feedID, err = strconv.ParseInt(r.URL.Query().Get("feed_id"), 10, 64); err != nil {
			RenderError(w, r, fmt.Errorf("invalid feed_id: %w", err), http.StatusBadRequest)
			return
		}
		items, err = s.store.GetItemsByFeed(r.Context(), feedID, limit, offset)
	case r.URL.Query().Get("folder_id") != "":
		var folderID int64
		if folderID, err = strconv.ParseInt(r.URL.Query().Get("folder_id"), 10, 64); err != nil {
			RenderError(w, r, fmt.Errorf("invalid folder_id: %w", err), http.StatusBadRequest)
			return
		}
		items, err = s.store.GetItemsByFolder(r.Context(), folderID, limit, offset)
	default:
		items, err = s.store.GetItems(r.Context(), limit, offset)
	}

	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, items)
}

// getItemHandler returns a single item with its extracted content
func (s *Server) getItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	item, err := s.store.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, item)
}

// markReadHandler stamps an item as read
func (s *Server) markReadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.store.MarkItemRead(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "read"})
}

// markUnreadHandler clears an item's read stamp
func (s *Server) markUnreadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.store.MarkItemUnread(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "unread"})
}

// bulkReadHandler marks a set of items as read in one statement
func (s *Server) bulkReadHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if len(req.IDs) == 0 {
		RenderError(w, r, errors.New("ids is required"), http.StatusBadRequest)
		return
	}

	if err := s.store.BulkMarkRead(r.Context(), req.IDs); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]int{"marked": len(req.IDs)})
}

// unreadCountsHandler returns unread totals per feed plus the overall count
func (s *Server) unreadCountsHandler(w http.ResponseWriter, r *http.Request) {
	perFeed, total, err := s.store.UnreadCounts(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	counts := make(map[string]int, len(perFeed))
	for feedID, n := range perFeed {
		counts[strconv.FormatInt(feedID, 10)] = n
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"feeds": counts, "total": total})
}

// pageParams parses limit/offset query parameters with sane bounds
func pageParams(r *http.Request) (limit, offset int, err error) {
	limit = defaultItemsLimit
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit <= 0 {
			return 0, 0, fmt.Errorf("invalid limit %q", v)
		}
		if limit > maxItemsLimit {
			limit = maxItemsLimit
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("offset")); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset %q", v)
		}
	}
	return limit, offset, nil
}
