package feed

import (
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// ItemFields holds the normalized per-entry values ingestion works with,
// derived from the dialect-dependent shape of a raw feed entry.
type ItemFields struct {
	GUID        string
	Title       string
	Link        string
	Description string
	ImageURL    string
	PubDate     time.Time
}

var imgSrcRe = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)

// ExtractFields derives stable values from a raw feed entry. Every selection
// follows a fixed preference order and treats an absent field as empty rather
// than an error.
func ExtractFields(item *gofeed.Item) ItemFields {
	fields := ItemFields{
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Description: strings.TrimSpace(item.Description),
		ImageURL:    ExtractImageURL(item),
		PubDate:     extractPubDate(item),
	}

	if fields.Description == "" {
		fields.Description = strings.TrimSpace(item.Content)
	}

	// guid falls back to link, then title; the first non-empty wins
	fields.GUID = strings.TrimSpace(item.GUID)
	if fields.GUID == "" {
		fields.GUID = fields.Link
	}
	if fields.GUID == "" {
		fields.GUID = fields.Title
	}

	return fields
}

// ExtractImageURL picks a display image for an entry: an enclosure with an
// image MIME type, then media:content, then media:thumbnail, then the first
// <img> tag found in the entry body. Absence yields an empty string.
func ExtractImageURL(item *gofeed.Item) string {
	for _, enclosure := range item.Enclosures {
		if enclosure == nil {
			continue
		}
		if strings.HasPrefix(enclosure.Type, "image/") && enclosure.URL != "" {
			return enclosure.URL
		}
	}

	if url := extAttr(item, "media", "content", "url"); url != "" {
		return url
	}
	if url := extAttr(item, "media", "thumbnail", "url"); url != "" {
		return url
	}

	for _, body := range []string{item.Content, item.Description} {
		if match := imgSrcRe.FindStringSubmatch(body); match != nil {
			return match[1]
		}
	}

	return ""
}

// extractPubDate resolves the publication instant: published date first, then
// updated date (Atom entries often carry only the latter), then current time.
func extractPubDate(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if t, ok := ParseFeedDate(item.Published); ok {
		return t
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	if t, ok := ParseFeedDate(item.Updated); ok {
		return t
	}
	return time.Now().UTC()
}

// extAttr unwraps a namespaced extension attribute, treating missing maps,
// empty element lists and absent attributes uniformly as "not present".
func extAttr(item *gofeed.Item, space, name, attr string) string {
	elements := item.Extensions[space][name]
	if len(elements) == 0 {
		return ""
	}
	return elements[0].Attrs[attr]
}
