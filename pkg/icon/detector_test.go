package icon

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes encodes a solid-colored 16x16 PNG
func pngBytes(t *testing.T, c color.RGBA) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFaviconURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"https feed", "https://example.com/feed.xml", "https://example.com/favicon.ico"},
		{"path stripped", "https://example.com/blog/rss?format=xml", "https://example.com/favicon.ico"},
		{"port preserved", "http://example.com:8080/feed", "http://example.com:8080/favicon.ico"},
		{"no host", "/relative/feed.xml", ""},
		{"garbage", "://", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FaviconURL(tt.url))
		})
	}
}

func TestDominantColor(t *testing.T) {
	t.Run("solid color averages to itself", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
			}
		}
		assert.Equal(t, "#c86432", DominantColor(img))
	})

	t.Run("transparent pixels ignored", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.SetRGBA(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		img.SetRGBA(1, 0, color.RGBA{R: 10, G: 10, B: 10, A: 0})
		img.SetRGBA(0, 1, color.RGBA{R: 10, G: 10, B: 10, A: 0})
		img.SetRGBA(1, 1, color.RGBA{R: 10, G: 10, B: 10, A: 0})
		assert.Equal(t, "#c86432", DominantColor(img))
	})

	t.Run("near-white and near-black pixels ignored", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 3, 1))
		img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		img.SetRGBA(1, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255})
		img.SetRGBA(2, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		assert.Equal(t, "#c86432", DominantColor(img))
	})

	t.Run("all pixels filtered falls back to default", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 1))
		img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		img.SetRGBA(1, 0, color.RGBA{A: 0})
		assert.Equal(t, DefaultColor, DominantColor(img))
	})
}

func TestDetector_Detect(t *testing.T) {
	orange := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	t.Run("favicon.ico served as png", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/favicon.ico" {
				w.Header().Set("Content-Type", "image/png")
				_, _ = w.Write(pngBytes(t, orange))
				return
			}
			http.NotFound(w, r)
		}))
		defer srv.Close()

		detector := NewDetector(2*time.Second, "test-agent/1.0")
		result := detector.Detect(context.Background(), srv.URL+"/feed.xml")

		assert.Equal(t, srv.URL+"/favicon.ico", result.IconURL)
		assert.Equal(t, "#c86432", result.Color)
	})

	t.Run("apple touch icon when favicon missing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/apple-touch-icon.png" {
				_, _ = w.Write(pngBytes(t, orange))
				return
			}
			http.NotFound(w, r)
		}))
		defer srv.Close()

		detector := NewDetector(2*time.Second, "test-agent/1.0")
		result := detector.Detect(context.Background(), srv.URL+"/feed.xml")
		assert.Equal(t, srv.URL+"/apple-touch-icon.png", result.IconURL)
	})

	t.Run("linked icon discovered from homepage", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/":
				_, _ = w.Write([]byte(`<html><head><link rel="shortcut icon" href="/static/logo.png"></head><body></body></html>`))
			case "/static/logo.png":
				_, _ = w.Write(pngBytes(t, orange))
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		detector := NewDetector(2*time.Second, "test-agent/1.0")
		result := detector.Detect(context.Background(), srv.URL+"/feed.xml")
		assert.Equal(t, srv.URL+"/static/logo.png", result.IconURL)
		assert.Equal(t, "#c86432", result.Color)
	})

	t.Run("nothing works falls back to conventional url and default color", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		detector := NewDetector(time.Second, "test-agent/1.0")
		result := detector.Detect(context.Background(), srv.URL+"/feed.xml")
		assert.Equal(t, srv.URL+"/favicon.ico", result.IconURL)
		assert.Equal(t, DefaultColor, result.Color)
	})

	t.Run("svg icon rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/favicon.ico" {
				w.Header().Set("Content-Type", "image/svg+xml")
				_, _ = w.Write([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
				return
			}
			http.NotFound(w, r)
		}))
		defer srv.Close()

		detector := NewDetector(time.Second, "test-agent/1.0")
		result := detector.Detect(context.Background(), srv.URL+"/feed.xml")
		assert.Equal(t, DefaultColor, result.Color)
	})

	t.Run("invalid feed url", func(t *testing.T) {
		detector := NewDetector(time.Second, "test-agent/1.0")
		result := detector.Detect(context.Background(), "not a url")
		assert.Empty(t, result.IconURL)
		assert.Equal(t, DefaultColor, result.Color)
	})
}

func TestDetector_DetectColor(t *testing.T) {
	t.Run("derives color from image", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(pngBytes(t, color.RGBA{R: 60, G: 120, B: 180, A: 255}))
		}))
		defer srv.Close()

		detector := NewDetector(time.Second, "test-agent/1.0")
		assert.Equal(t, "#3c78b4", detector.DetectColor(context.Background(), srv.URL))
	})

	t.Run("unreachable icon falls back to default", func(t *testing.T) {
		detector := NewDetector(100*time.Millisecond, "test-agent/1.0")
		assert.Equal(t, DefaultColor, detector.DetectColor(context.Background(), "http://127.0.0.1:1/icon.png"))
	})
}
