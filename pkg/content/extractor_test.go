package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Understanding Feed Readers</title>
<meta name="description" content="how feed readers work"></head>
<body>
<nav>Home | About | Contact</nav>
<article>
<h1>Understanding Feed Readers</h1>
<p>Feed readers poll subscribed sources on a schedule and reconcile the entries
they observe against local storage. The interesting part is not the fetching
but the reconciliation: deciding which entries are new, which are updates and
which should be ignored entirely.</p>
<p>A reconciliation pipeline typically normalizes dates, extracts stable
identifiers and filters unwanted entries before anything touches the database.
Doing this consistently across dialects of RSS and Atom is where most of the
complexity hides in practice.</p>
<p>Content extraction adds another stage on top. Fetching the linked page and
distilling the readable article body lets the reader render full text even for
feeds that only publish short summaries.</p>
</article>
<footer>Copyright 2026</footer>
</body>
</html>`

func TestHTTPExtractor_Extract(t *testing.T) {
	t.Run("extracts article content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(articleHTML))
		}))
		defer srv.Close()

		extractor := NewHTTPExtractor(10*time.Second, "test-agent/1.0")
		result, err := extractor.Extract(context.Background(), srv.URL+"/article")
		require.NoError(t, err)

		assert.Contains(t, result.Content, "reconciliation")
		assert.NotContains(t, result.Content, "Copyright 2026")
		assert.Positive(t, result.TTR)
	})

	t.Run("sanitizes script tags", func(t *testing.T) {
		page := strings.Replace(articleHTML, "</article>",
			`<script>alert("xss")</script></article>`, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(page))
		}))
		defer srv.Close()

		extractor := NewHTTPExtractor(10*time.Second, "test-agent/1.0")
		result, err := extractor.Extract(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.NotContains(t, result.Content, "<script>")
	})

	t.Run("empty url", func(t *testing.T) {
		extractor := NewHTTPExtractor(time.Second, "test-agent/1.0")
		_, err := extractor.Extract(context.Background(), "")
		require.Error(t, err)
	})

	t.Run("relative url rejected", func(t *testing.T) {
		extractor := NewHTTPExtractor(time.Second, "test-agent/1.0")
		_, err := extractor.Extract(context.Background(), "/no-host")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid URL")
	})

	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		extractor := NewHTTPExtractor(time.Second, "test-agent/1.0")
		_, err := extractor.Extract(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code 404")
	})

	t.Run("timeout on slow origin", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			_, _ = w.Write([]byte(articleHTML))
		}))
		defer srv.Close()

		extractor := NewHTTPExtractor(50*time.Millisecond, "test-agent/1.0")
		_, err := extractor.Extract(context.Background(), srv.URL)
		require.Error(t, err)
	})

	t.Run("page with no extractable content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body></body></html>"))
		}))
		defer srv.Close()

		extractor := NewHTTPExtractor(time.Second, "test-agent/1.0")
		_, err := extractor.Extract(context.Background(), srv.URL)
		require.Error(t, err)
	})
}

func TestEstimateTTR(t *testing.T) {
	assert.Zero(t, estimateTTR(""))
	assert.Zero(t, estimateTTR("   "))

	// 238 words at 238 wpm is exactly one minute
	words := strings.Repeat("word ", 238)
	assert.EqualValues(t, 60, estimateTTR(words))

	// short texts round down but stay non-negative
	assert.EqualValues(t, 0, estimateTTR("just three words"))
}
