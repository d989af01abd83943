package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertItem(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	feed := makeTestFeed(t, database, "upsert")

	pubDate := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	item := &Item{
		FeedID:      feed.ID,
		GUID:        "https://example.com/post-1",
		Title:       "First Post",
		Link:        "https://example.com/post-1",
		Description: "original description",
		PubDate:     pubDate,
	}

	t.Run("insert reports changed", func(t *testing.T) {
		changed, err := database.UpsertItem(ctx, item)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("identical re-ingestion reports unchanged", func(t *testing.T) {
		changed, err := database.UpsertItem(ctx, item)
		require.NoError(t, err)
		assert.False(t, changed)

		// still a single row
		items, err := database.GetItemsByFeed(ctx, feed.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("modified description updates in place", func(t *testing.T) {
		item.Description = "updated description"
		changed, err := database.UpsertItem(ctx, item)
		require.NoError(t, err)
		assert.True(t, changed)

		got, err := database.GetItemByGUID(ctx, feed.ID, item.GUID)
		require.NoError(t, err)
		assert.Equal(t, "updated description", got.Description)

		items, err := database.GetItemsByFeed(ctx, feed.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("same guid on another feed is a separate row", func(t *testing.T) {
		other := makeTestFeed(t, database, "other")
		changed, err := database.UpsertItem(ctx, &Item{
			FeedID:  other.ID,
			GUID:    item.GUID,
			Title:   "Same GUID Elsewhere",
			PubDate: pubDate,
		})
		require.NoError(t, err)
		assert.True(t, changed)
	})
}

func TestGetAllTitles(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	feedA := makeTestFeed(t, database, "a")
	feedB := makeTestFeed(t, database, "b")

	now := time.Now().UTC()
	for i, spec := range []struct {
		feedID int64
		guid   string
		title  string
	}{
		{feedA.ID, "a1", "Alpha"},
		{feedA.ID, "a2", "Beta"},
		{feedB.ID, "b1", "Gamma"},
	} {
		_, err := database.UpsertItem(ctx, &Item{
			FeedID: spec.feedID, GUID: spec.guid, Title: spec.title,
			PubDate: now.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	titles, err := database.GetAllTitles(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alpha", "Beta", "Gamma"}, titles)
}

func TestGetItemsOrdering(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	feed := makeTestFeed(t, database, "ordered")

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := database.UpsertItem(ctx, &Item{
			FeedID: feed.ID, GUID: string(rune('a' + i)), Title: string(rune('A' + i)),
			PubDate: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		items, err := database.GetItems(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "C", items[0].Title)
		assert.Equal(t, "A", items[2].Title)
		assert.Equal(t, "ordered", items[0].FeedTitle)
	})

	t.Run("limit and offset", func(t *testing.T) {
		items, err := database.GetItems(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "B", items[0].Title)
	})
}

func TestGetItemsByFolder(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	folder := &Folder{Label: "News", Icon: "paper"}
	require.NoError(t, database.CreateFolder(ctx, folder))

	inFolder := makeTestFeed(t, database, "in-folder")
	inFolder.FolderID.Int64, inFolder.FolderID.Valid = folder.ID, true
	require.NoError(t, database.UpdateFeed(ctx, inFolder))
	outside := makeTestFeed(t, database, "outside")

	now := time.Now().UTC()
	_, err := database.UpsertItem(ctx, &Item{FeedID: inFolder.ID, GUID: "i1", Title: "Inside", PubDate: now})
	require.NoError(t, err)
	_, err = database.UpsertItem(ctx, &Item{FeedID: outside.ID, GUID: "o1", Title: "Outside", PubDate: now})
	require.NoError(t, err)

	items, err := database.GetItemsByFolder(ctx, folder.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Inside", items[0].Title)
}

func TestSearchItems(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	feed := makeTestFeed(t, database, "search")

	now := time.Now().UTC()
	_, err := database.UpsertItem(ctx, &Item{
		FeedID: feed.ID, GUID: "s1", Title: "Go Generics Deep Dive",
		Description: "type parameters explained", PubDate: now,
	})
	require.NoError(t, err)
	_, err = database.UpsertItem(ctx, &Item{
		FeedID: feed.ID, GUID: "s2", Title: "Weekend Reading",
		Description: "assorted links", PubDate: now,
	})
	require.NoError(t, err)

	t.Run("match in title", func(t *testing.T) {
		items, err := database.SearchItems(ctx, "Generics", 10, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Go Generics Deep Dive", items[0].Title)
	})

	t.Run("match in description", func(t *testing.T) {
		items, err := database.SearchItems(ctx, "assorted", 10, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Weekend Reading", items[0].Title)
	})

	t.Run("no match", func(t *testing.T) {
		items, err := database.SearchItems(ctx, "quantum", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestItemContent(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	feed := makeTestFeed(t, database, "content")

	now := time.Now().UTC()
	_, err := database.UpsertItem(ctx, &Item{
		FeedID: feed.ID, GUID: "c1", Title: "Has Link",
		Link: "https://example.com/c1", PubDate: now,
	})
	require.NoError(t, err)
	_, err = database.UpsertItem(ctx, &Item{FeedID: feed.ID, GUID: "c2", Title: "No Link", PubDate: now})
	require.NoError(t, err)

	t.Run("items without content skips linkless", func(t *testing.T) {
		pending, err := database.GetItemsWithoutContent(ctx, feed.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "c1", pending[0].GUID)
	})

	t.Run("update content fills full_content and ttr", func(t *testing.T) {
		item, err := database.GetItemByGUID(ctx, feed.ID, "c1")
		require.NoError(t, err)

		require.NoError(t, database.UpdateItemContent(ctx, item.ID, "<p>full text</p>", 240))

		got, err := database.GetItem(ctx, item.ID)
		require.NoError(t, err)
		require.True(t, got.FullContent.Valid)
		assert.Equal(t, "<p>full text</p>", got.FullContent.String)
		require.True(t, got.TTR.Valid)
		assert.EqualValues(t, 240, got.TTR.Int64)

		pending, err := database.GetItemsWithoutContent(ctx, feed.ID)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestReadState(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	feed := makeTestFeed(t, database, "read")

	now := time.Now().UTC()
	ids := make([]int64, 0, 3)
	for _, guid := range []string{"r1", "r2", "r3"} {
		_, err := database.UpsertItem(ctx, &Item{FeedID: feed.ID, GUID: guid, Title: guid, PubDate: now})
		require.NoError(t, err)
		item, err := database.GetItemByGUID(ctx, feed.ID, guid)
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}

	t.Run("mark read and unread", func(t *testing.T) {
		require.NoError(t, database.MarkItemRead(ctx, ids[0]))
		item, err := database.GetItem(ctx, ids[0])
		require.NoError(t, err)
		assert.True(t, item.ReadAt.Valid)

		require.NoError(t, database.MarkItemUnread(ctx, ids[0]))
		item, err = database.GetItem(ctx, ids[0])
		require.NoError(t, err)
		assert.False(t, item.ReadAt.Valid)
	})

	t.Run("bulk mark read", func(t *testing.T) {
		require.NoError(t, database.BulkMarkRead(ctx, ids[:2]))

		perFeed, total, err := database.UnreadCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, 1, perFeed[feed.ID])
	})

	t.Run("bulk mark read with empty slice is a no-op", func(t *testing.T) {
		require.NoError(t, database.BulkMarkRead(ctx, nil))
	})
}

func TestDeleteItemsOlderThan(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	feed := makeTestFeed(t, database, "purge")

	now := time.Now().UTC()
	_, err := database.UpsertItem(ctx, &Item{FeedID: feed.ID, GUID: "old", Title: "Old", PubDate: now.Add(-10 * 24 * time.Hour)})
	require.NoError(t, err)
	_, err = database.UpsertItem(ctx, &Item{FeedID: feed.ID, GUID: "fresh", Title: "Fresh", PubDate: now})
	require.NoError(t, err)

	deleted, err := database.DeleteItemsOlderThan(ctx, now.Add(-3*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	items, err := database.GetItemsByFeed(ctx, feed.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Fresh", items[0].Title)
}
