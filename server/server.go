package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lectern-dev/lectern/pkg/db"
	"github.com/lectern-dev/lectern/pkg/icon"
	"github.com/lectern-dev/lectern/pkg/ingest"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher
//go:generate moq -out mocks/icon_detector.go -pkg mocks -skip-ensure -fmt goimports . IconDetector
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	refresher Refresher
	icons     IconDetector
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store is the persistence surface the HTTP handlers depend on
type Store interface {
	CreateFeed(ctx context.Context, feed *db.Feed) error
	GetFeed(ctx context.Context, id int64) (*db.Feed, error)
	GetFeeds(ctx context.Context) ([]db.Feed, error)
	UpdateFeed(ctx context.Context, feed *db.Feed) error
	DeleteFeed(ctx context.Context, id int64) error

	GetItems(ctx context.Context, limit, offset int) ([]db.ItemWithFeed, error)
	GetItemsByFeed(ctx context.Context, feedID int64, limit, offset int) ([]db.ItemWithFeed, error)
	GetItemsByFolder(ctx context.Context, folderID int64, limit, offset int) ([]db.ItemWithFeed, error)
	SearchItems(ctx context.Context, q string, limit, offset int) ([]db.ItemWithFeed, error)
	GetItem(ctx context.Context, id int64) (*db.Item, error)
	MarkItemRead(ctx context.Context, itemID int64) error
	MarkItemUnread(ctx context.Context, itemID int64) error
	BulkMarkRead(ctx context.Context, itemIDs []int64) error
	UnreadCounts(ctx context.Context) (perFeed map[int64]int, total int, err error)

	GetFolders(ctx context.Context) ([]db.Folder, error)
	CreateFolder(ctx context.Context, folder *db.Folder) error
	UpdateFolder(ctx context.Context, folder *db.Folder) error
	DeleteFolder(ctx context.Context, id int64) error

	GetFilterKeywords(ctx context.Context) ([]db.FilterKeyword, error)
	CreateFilterKeyword(ctx context.Context, keyword string) (*db.FilterKeyword, error)
	DeleteFilterKeyword(ctx context.Context, id int64) error
}

// Refresher triggers feed refreshes on demand
type Refresher interface {
	RefreshFeed(ctx context.Context, feedID int64) (*ingest.Outcome, error)
	RefreshAll(ctx context.Context) ([]ingest.Outcome, error)
}

// IconDetector resolves a site icon and accent color for a feed
type IconDetector interface {
	Detect(ctx context.Context, feedURL string) icon.Result
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, refresher Refresher, icons IconDetector, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		refresher: refresher,
		icons:     icons,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("lectern", "lectern-dev", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("POST /feeds/refresh", s.refreshAllHandler)
		r.HandleFunc("GET /feeds/{id}", s.getFeedHandler)
		r.HandleFunc("PUT /feeds/{id}", s.updateFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)
		r.HandleFunc("POST /feeds/{id}/refresh", s.refreshFeedHandler)
		r.HandleFunc("POST /feeds/{id}/icon", s.detectIconHandler)

		r.HandleFunc("GET /items", s.listItemsHandler)
		r.HandleFunc("POST /items/read", s.bulkReadHandler)
		r.HandleFunc("GET /items/{id}", s.getItemHandler)
		r.HandleFunc("POST /items/{id}/read", s.markReadHandler)
		r.HandleFunc("POST /items/{id}/unread", s.markUnreadHandler)
		r.HandleFunc("GET /unread-counts", s.unreadCountsHandler)

		r.HandleFunc("GET /folders", s.listFoldersHandler)
		r.HandleFunc("POST /folders", s.createFolderHandler)
		r.HandleFunc("PUT /folders/{id}", s.updateFolderHandler)
		r.HandleFunc("DELETE /folders/{id}", s.deleteFolderHandler)

		r.HandleFunc("GET /filter-keywords", s.listKeywordsHandler)
		r.HandleFunc("POST /filter-keywords", s.createKeywordHandler)
		r.HandleFunc("DELETE /filter-keywords/{id}", s.deleteKeywordHandler)
	})

	s.router.Handle("GET /metrics", promhttp.Handler())
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// pathID extracts the {id} path segment as int64
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
