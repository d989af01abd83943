package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssSample = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Sample RSS</title>
	<description>rss sample feed</description>
	<link>https://example.com</link>
	<item>
		<title>First Article</title>
		<link>https://example.com/first</link>
		<guid>https://example.com/first</guid>
		<description>first summary</description>
		<pubDate>Wed, 20 Aug 2026 10:00:00 +0000</pubDate>
	</item>
	<item>
		<title>Second Article</title>
		<link>https://example.com/second</link>
		<guid>https://example.com/second</guid>
		<description>second summary</description>
		<pubDate>Wed, 19 Aug 2026 10:00:00 +0000</pubDate>
	</item>
</channel>
</rss>`

const atomSample = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Sample Atom</title>
	<link href="https://example.org/"/>
	<updated>2026-08-20T10:00:00Z</updated>
	<id>urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6</id>
	<entry>
		<title>Atom Entry</title>
		<link href="https://example.org/entry"/>
		<id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
		<updated>2026-08-20T09:00:00Z</updated>
		<summary>atom summary</summary>
	</entry>
</feed>`

func TestParser_Parse(t *testing.T) {
	t.Run("rss feed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = w.Write([]byte(rssSample))
		}))
		defer srv.Close()

		parser := NewParser(5*time.Second, "test-agent/1.0")
		parsed, err := parser.Parse(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, "Sample RSS", parsed.Title)
		assert.Equal(t, "rss sample feed", parsed.Description)
		require.Len(t, parsed.Items, 2)
		assert.Equal(t, "First Article", parsed.Items[0].Title)
		require.NotNil(t, parsed.Items[0].PublishedParsed)
		assert.Equal(t, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC), parsed.Items[0].PublishedParsed.UTC())
	})

	t.Run("atom feed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/atom+xml")
			_, _ = w.Write([]byte(atomSample))
		}))
		defer srv.Close()

		parser := NewParser(5*time.Second, "test-agent/1.0")
		parsed, err := parser.Parse(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, "Sample Atom", parsed.Title)
		require.Len(t, parsed.Items, 1)
		assert.Equal(t, "Atom Entry", parsed.Items[0].Title)
		assert.Equal(t, "https://example.org/entry", parsed.Items[0].Link)
	})

	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		parser := NewParser(5*time.Second, "test-agent/1.0")
		_, err := parser.Parse(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 500")
	})

	t.Run("invalid xml", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("this is not a feed"))
		}))
		defer srv.Close()

		parser := NewParser(5*time.Second, "test-agent/1.0")
		_, err := parser.Parse(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})

	t.Run("unreachable server", func(t *testing.T) {
		parser := NewParser(time.Second, "test-agent/1.0")
		_, err := parser.Parse(context.Background(), "http://127.0.0.1:1/feed.xml")
		require.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(rssSample))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		parser := NewParser(5*time.Second, "test-agent/1.0")
		_, err := parser.Parse(ctx, srv.URL)
		require.Error(t, err)
	})
}
