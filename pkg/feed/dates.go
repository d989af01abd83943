package feed

import (
	"strings"
	"time"
)

// dateLayouts lists date formats seen in real-world feeds. Only layouts with
// numeric or Z offsets are included: Go resolves unknown named zones to a zero
// offset without an error, which would silently shift the instant. Named
// abbreviations go through the coercion table instead.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC822Z,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// tzOffsets maps timezone abbreviations that generic date parsers reject to
// their fixed numeric UTC offsets. German feeds in particular emit MEZ/MESZ.
var tzOffsets = map[string]string{
	"UTC":  "+0000",
	"GMT":  "+0000",
	"CET":  "+0100",
	"CEST": "+0200",
	"MEZ":  "+0100",
	"MESZ": "+0200",
}

// NormalizeDate converts an origin-supplied date string into a UTC instant.
// Empty or unparseable input yields the current time: losing an article over a
// broken date header is worse than defaulting its timestamp to now.
func NormalizeDate(raw string) time.Time {
	if t, ok := ParseFeedDate(raw); ok {
		return t
	}
	return time.Now().UTC()
}

// ParseFeedDate attempts to parse a feed date string, reporting success. The
// trailing token is checked against the known timezone abbreviations and
// replaced with its numeric offset before parsing.
func ParseFeedDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if fields := strings.Fields(raw); len(fields) > 1 {
		last := fields[len(fields)-1]
		if offset, ok := tzOffsets[strings.ToUpper(last)]; ok {
			fields[len(fields)-1] = offset
			raw = strings.Join(fields, " ")
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
