package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lectern-dev/lectern/pkg/db"
	"github.com/lectern-dev/lectern/server/mocks"
)

func TestListItemsHandler(t *testing.T) {
	store := &mocks.StoreMock{
		GetItemsFunc: func(ctx context.Context, limit, offset int) ([]db.ItemWithFeed, error) {
			return []db.ItemWithFeed{{Item: db.Item{ID: 1, Title: "All"}}}, nil
		},
		GetItemsByFeedFunc: func(ctx context.Context, feedID int64, limit, offset int) ([]db.ItemWithFeed, error) {
			return []db.ItemWithFeed{{Item: db.Item{ID: 2, Title: fmt.Sprintf("Feed %d", feedID)}}}, nil
		},
		GetItemsByFolderFunc: func(ctx context.Context, folderID int64, limit, offset int) ([]db.ItemWithFeed, error) {
			return []db.ItemWithFeed{{Item: db.Item{ID: 3, Title: fmt.Sprintf("Folder %d", folderID)}}}, nil
		},
		SearchItemsFunc: func(ctx context.Context, q string, limit, offset int) ([]db.ItemWithFeed, error) {
			return []db.ItemWithFeed{{Item: db.Item{ID: 4, Title: "Found " + q}}}, nil
		},
	}
	srv := testServer(store, &mocks.RefresherMock{}, noopIcons())

	decode := func(t *testing.T, body []byte) []db.ItemWithFeed {
		t.Helper()
		var items []db.ItemWithFeed
		require.NoError(t, json.Unmarshal(body, &items))
		return items
	}

	t.Run("default listing", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/v1/items", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		items := decode(t, rec.Body.Bytes())
		require.Len(t, items, 1)
		assert.Equal(t, "All", items[0].Title)

		// default page size applied
		require.Len(t, store.GetItemsCalls(), 1)
		assert.Equal(t, defaultItemsLimit, store.GetItemsCalls()[0].Limit)
	})

	t.Run("feed scope", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/v1/items?feed_id=5", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Feed 5", decode(t, rec.Body.Bytes())[0].Title)
	})

	t.Run("folder scope", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/v1/items?folder_id=9", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Folder 9", decode(t, rec.Body.Bytes())[0].Title)
	})

	t.Run("search takes precedence", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/v1/items?q=golang&feed_id=5", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Found golang", decode(t, rec.Body.Bytes())[0].Title)
	})

	t.Run("limit capped", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/v1/items?limit=10000", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		calls := store.GetItemsCalls()
		assert.Equal(t, maxItemsLimit, calls[len(calls)-1].Limit)
	})

	t.Run("invalid pagination rejected", func(t *testing.T) {
		for _, query := range []string{"limit=abc", "limit=0", "limit=-5", "offset=-1", "offset=x"} {
			rec := doRequest(srv, http.MethodGet, "/api/v1/items?"+query, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "query %s", query)
		}
	})

	t.Run("invalid feed_id rejected", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/api/v1/items?feed_id=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetItemHandler(t *testing.T) {
	store := &mocks.StoreMock{
		GetItemFunc: func(ctx context.Context, id int64) (*db.Item, error) {
			if id != 1 {
				return nil, fmt.Errorf("item %d: %w", id, db.ErrNotFound)
			}
			return &db.Item{ID: 1, Title: "The Item"}, nil
		},
	}
	srv := testServer(store, &mocks.RefresherMock{}, noopIcons())

	rec := doRequest(srv, http.MethodGet, "/api/v1/items/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var item db.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "The Item", item.Title)

	rec = doRequest(srv, http.MethodGet, "/api/v1/items/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReadStateHandlers(t *testing.T) {
	store := &mocks.StoreMock{
		MarkItemReadFunc:   func(ctx context.Context, itemID int64) error { return nil },
		MarkItemUnreadFunc: func(ctx context.Context, itemID int64) error { return nil },
	}
	srv := testServer(store, &mocks.RefresherMock{}, noopIcons())

	rec := doRequest(srv, http.MethodPost, "/api/v1/items/3/read", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.MarkItemReadCalls(), 1)
	assert.EqualValues(t, 3, store.MarkItemReadCalls()[0].ItemID)

	rec = doRequest(srv, http.MethodPost, "/api/v1/items/3/unread", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, store.MarkItemUnreadCalls(), 1)
}

func TestBulkReadHandler(t *testing.T) {
	t.Run("marks all requested ids", func(t *testing.T) {
		store := &mocks.StoreMock{
			BulkMarkReadFunc: func(ctx context.Context, itemIDs []int64) error { return nil },
		}
		srv := testServer(store, &mocks.RefresherMock{}, noopIcons())

		rec := doRequest(srv, http.MethodPost, "/api/v1/items/read",
			strings.NewReader(`{"ids":[1,2,3]}`))
		require.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, store.BulkMarkReadCalls(), 1)
		assert.Equal(t, []int64{1, 2, 3}, store.BulkMarkReadCalls()[0].ItemIDs)
	})

	t.Run("empty ids rejected", func(t *testing.T) {
		srv := testServer(&mocks.StoreMock{}, &mocks.RefresherMock{}, noopIcons())
		rec := doRequest(srv, http.MethodPost, "/api/v1/items/read", strings.NewReader(`{"ids":[]}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUnreadCountsHandler(t *testing.T) {
	store := &mocks.StoreMock{
		UnreadCountsFunc: func(ctx context.Context) (map[int64]int, int, error) {
			return map[int64]int{1: 4, 2: 6}, 10, nil
		},
	}
	srv := testServer(store, &mocks.RefresherMock{}, noopIcons())

	rec := doRequest(srv, http.MethodGet, "/api/v1/unread-counts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Feeds map[string]int `json:"feeds"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Total)
	assert.Equal(t, 4, resp.Feeds["1"])
	assert.Equal(t, 6, resp.Feeds["2"])
}
