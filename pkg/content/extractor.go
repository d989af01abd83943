package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// readingSpeedWPM is the assumed reading speed for time-to-read estimates
const readingSpeedWPM = 238

// Result holds extracted article content. Content is sanitized HTML suitable
// for direct rendering; TTR is the estimated reading time in seconds, zero
// when it cannot be computed.
type Result struct {
	Content     string
	Title       string
	Description string
	TTR         int64
}

// HTTPExtractor extracts article content from URLs using trafilatura
type HTTPExtractor struct {
	timeout   time.Duration
	userAgent string
	client    *http.Client
	sanitizer *bluemonday.Policy
}

// NewHTTPExtractor creates a new content extractor. The timeout bounds the
// whole fetch-and-extract operation for one URL.
func NewHTTPExtractor(timeout time.Duration, userAgent string) *HTTPExtractor {
	return &HTTPExtractor{
		timeout:   timeout,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Extract retrieves and extracts the readable content of the page at the
// given URL. Any failure is returned as an error and never panics past this
// boundary; callers treat it as a typed per-item failure.
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (*Result, error) {
	if urlStr == "" {
		return nil, fmt.Errorf("url is required")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeImages:   true,
		IncludeLinks:    true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	extracted, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if extracted == nil || strings.TrimSpace(extracted.ContentText) == "" {
		return nil, fmt.Errorf("no content extracted from %s", urlStr)
	}

	result := &Result{
		Content:     e.renderContent(extracted),
		Title:       extracted.Metadata.Title,
		Description: extracted.Metadata.Description,
		TTR:         estimateTTR(extracted.ContentText),
	}
	return result, nil
}

// renderContent serializes the extracted document and sanitizes it; falls
// back to escaped plain text when no DOM node is available
func (e *HTTPExtractor) renderContent(extracted *trafilatura.ExtractResult) string {
	if extracted.ContentNode == nil {
		return e.sanitizer.Sanitize("<p>" + html.EscapeString(extracted.ContentText) + "</p>")
	}

	var sb strings.Builder
	if err := html.Render(&sb, extracted.ContentNode); err != nil {
		return e.sanitizer.Sanitize("<p>" + html.EscapeString(extracted.ContentText) + "</p>")
	}
	return e.sanitizer.Sanitize(sb.String())
}

// estimateTTR returns the estimated reading time in seconds for the given
// plain text, zero for empty input
func estimateTTR(text string) int64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int64(words * 60 / readingSpeedWPM)
}
