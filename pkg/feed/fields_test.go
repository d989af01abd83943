package feed

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/assert"
)

func TestExtractFields_GUIDFallback(t *testing.T) {
	tests := []struct {
		name string
		item gofeed.Item
		want string
	}{
		{
			name: "explicit guid wins",
			item: gofeed.Item{GUID: "tag:example.com,2026:1", Link: "https://example.com/1", Title: "One"},
			want: "tag:example.com,2026:1",
		},
		{
			name: "link when guid missing",
			item: gofeed.Item{Link: "https://example.com/1", Title: "One"},
			want: "https://example.com/1",
		},
		{
			name: "title as last resort",
			item: gofeed.Item{Title: "One"},
			want: "One",
		},
		{
			name: "whitespace guid treated as missing",
			item: gofeed.Item{GUID: "   ", Link: "https://example.com/1"},
			want: "https://example.com/1",
		},
		{
			name: "everything missing yields empty",
			item: gofeed.Item{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ExtractFields(&tt.item)
			assert.Equal(t, tt.want, fields.GUID)
		})
	}
}

func TestExtractFields_DescriptionFallsBackToContent(t *testing.T) {
	fields := ExtractFields(&gofeed.Item{Title: "x", Content: "<p>full body</p>"})
	assert.Equal(t, "<p>full body</p>", fields.Description)

	fields = ExtractFields(&gofeed.Item{Title: "x", Description: "summary", Content: "<p>full body</p>"})
	assert.Equal(t, "summary", fields.Description)
}

func TestExtractImageURL(t *testing.T) {
	mediaExt := func(name, url string) map[string]map[string][]ext.Extension {
		return map[string]map[string][]ext.Extension{
			"media": {name: {{Attrs: map[string]string{"url": url}}}},
		}
	}

	tests := []struct {
		name string
		item gofeed.Item
		want string
	}{
		{
			name: "image enclosure wins",
			item: gofeed.Item{
				Enclosures: []*gofeed.Enclosure{{Type: "image/jpeg", URL: "https://example.com/enc.jpg"}},
				Extensions: mediaExt("content", "https://example.com/media.jpg"),
				Content:    `<img src="https://example.com/inline.jpg">`,
			},
			want: "https://example.com/enc.jpg",
		},
		{
			name: "non-image enclosure skipped",
			item: gofeed.Item{
				Enclosures: []*gofeed.Enclosure{{Type: "audio/mpeg", URL: "https://example.com/ep.mp3"}},
				Extensions: mediaExt("content", "https://example.com/media.jpg"),
			},
			want: "https://example.com/media.jpg",
		},
		{
			name: "media content before thumbnail",
			item: gofeed.Item{
				Extensions: map[string]map[string][]ext.Extension{
					"media": {
						"content":   {{Attrs: map[string]string{"url": "https://example.com/content.jpg"}}},
						"thumbnail": {{Attrs: map[string]string{"url": "https://example.com/thumb.jpg"}}},
					},
				},
			},
			want: "https://example.com/content.jpg",
		},
		{
			name: "media thumbnail",
			item: gofeed.Item{Extensions: mediaExt("thumbnail", "https://example.com/thumb.jpg")},
			want: "https://example.com/thumb.jpg",
		},
		{
			name: "img tag in content",
			item: gofeed.Item{Content: `<p>text</p><img class="hero" src="https://example.com/inline.jpg" alt="">`},
			want: "https://example.com/inline.jpg",
		},
		{
			name: "img tag in description when content empty",
			item: gofeed.Item{Description: `<img src='https://example.com/desc.jpg'>`},
			want: "https://example.com/desc.jpg",
		},
		{
			name: "no image anywhere",
			item: gofeed.Item{Title: "plain", Description: "no markup here"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractImageURL(&tt.item))
		})
	}
}

func TestExtractFields_PubDate(t *testing.T) {
	published := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC)

	t.Run("published parsed wins", func(t *testing.T) {
		fields := ExtractFields(&gofeed.Item{PublishedParsed: &published, UpdatedParsed: &updated})
		assert.Equal(t, published, fields.PubDate)
	})

	t.Run("raw published string parsed when gofeed could not", func(t *testing.T) {
		fields := ExtractFields(&gofeed.Item{Published: "Mon, 02 Jan 2006 15:04:05 MEZ"})
		assert.Equal(t, time.Date(2006, 1, 2, 14, 4, 5, 0, time.UTC), fields.PubDate)
	})

	t.Run("updated when published missing", func(t *testing.T) {
		fields := ExtractFields(&gofeed.Item{UpdatedParsed: &updated})
		assert.Equal(t, updated, fields.PubDate)
	})

	t.Run("no dates defaults to now", func(t *testing.T) {
		fields := ExtractFields(&gofeed.Item{Title: "undated"})
		assert.WithinDuration(t, time.Now().UTC(), fields.PubDate, time.Second)
	})
}
