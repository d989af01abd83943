package icon

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  //GIF favicon support
	_ "image/jpeg" // JPEG favicon support
	_ "image/png"  // PNG favicon support
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultColor is the display color used when no dominant color can be
// detected
const DefaultColor = "#3b82f6"

// maxIconSize bounds how much of an icon response is read
const maxIconSize = 1 << 20

// Result holds the detected icon URL and display color for a feed
type Result struct {
	IconURL string
	Color   string
}

// Detector fetches site icons and derives a display color from them
type Detector struct {
	client    *http.Client
	userAgent string
}

// NewDetector creates a detector with the given per-request timeout
func NewDetector(timeout time.Duration, userAgent string) *Detector {
	return &Detector{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// FaviconURL derives the conventional favicon location for a feed URL. An
// unparseable URL yields an empty string.
func FaviconURL(feedURL string) string {
	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host + "/favicon.ico"
}

// Detect fetches an icon for the feed's site and derives its display color.
// Candidates are tried in order: /favicon.ico, /apple-touch-icon.png, then
// any <link rel="icon"> declared on the site's homepage. Detection never
// fails the caller: when no candidate works, the conventional favicon URL and
// the default color are returned.
func (d *Detector) Detect(ctx context.Context, feedURL string) Result {
	fallback := Result{IconURL: FaviconURL(feedURL), Color: DefaultColor}
	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fallback
	}

	base := parsed.Scheme + "://" + parsed.Host
	candidates := []string{base + "/favicon.ico", base + "/apple-touch-icon.png"}
	if linked := d.discoverLinkedIcon(ctx, base); linked != "" {
		candidates = append(candidates, linked)
	}

	for _, candidate := range candidates {
		img, err := d.fetchImage(ctx, candidate)
		if err != nil {
			log.Printf("[DEBUG] icon candidate %s rejected: %v", candidate, err)
			continue
		}
		return Result{IconURL: candidate, Color: DominantColor(img)}
	}

	return fallback
}

// DetectColor fetches the image at iconURL and derives its display color,
// falling back to the default on any failure
func (d *Detector) DetectColor(ctx context.Context, iconURL string) string {
	img, err := d.fetchImage(ctx, iconURL)
	if err != nil {
		log.Printf("[DEBUG] color detection failed for %s: %v", iconURL, err)
		return DefaultColor
	}
	return DominantColor(img)
}

// DominantColor averages the opaque, mid-brightness pixels of an image into a
// hex color. Transparent padding and near-white/near-black pixels are ignored
// so the result reflects the icon's actual hue.
func DominantColor(img image.Image) string {
	bounds := img.Bounds()
	var r, g, b, count uint64

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa < 0x8000 {
				continue
			}
			red, green, blue := pr>>8, pg>>8, pb>>8
			brightness := (red + green + blue) / 3
			if brightness <= 30 || brightness >= 225 {
				continue
			}
			r += uint64(red)
			g += uint64(green)
			b += uint64(blue)
			count++
		}
	}

	if count == 0 {
		return DefaultColor
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(r/count), uint8(g/count), uint8(b/count)) //nolint:gosec // averages of 8-bit values fit
}

// fetchImage retrieves and decodes an image, rejecting SVG and undecodable
// payloads
func (d *Detector) fetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept", "image/*,*/*")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch icon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "svg") {
		return nil, fmt.Errorf("svg icons are not decodable")
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxIconSize))
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}
	return img, nil
}

// discoverLinkedIcon parses the site homepage and returns the href of the
// first <link rel="icon"> style element, resolved against the base URL
func (d *Detector) discoverLinkedIcon(ctx context.Context, base string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/", http.NoBody)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxIconSize))
	if err != nil {
		return ""
	}

	href := findIconLink(doc)
	if href == "" {
		return ""
	}

	baseURL, err := url.Parse(base + "/")
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(ref).String()
}

// findIconLink walks the document tree for a <link> whose rel mentions "icon"
func findIconLink(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "link" {
		var rel, href string
		for _, attr := range n.Attr {
			switch attr.Key {
			case "rel":
				rel = strings.ToLower(attr.Val)
			case "href":
				href = attr.Val
			}
		}
		if strings.Contains(rel, "icon") && href != "" {
			return href
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findIconLink(c); found != "" {
			return found
		}
	}
	return ""
}
