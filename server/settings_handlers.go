package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lectern-dev/lectern/pkg/db"
)

// listFoldersHandler returns all folders
func (s *Server) listFoldersHandler(w http.ResponseWriter, r *http.Request) {
	folders, err := s.store.GetFolders(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, folders)
}

// createFolderHandler adds a folder for grouping feeds
func (s *Server) createFolderHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label"`
		Icon  string `json:"icon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Label) == "" {
		RenderError(w, r, errors.New("label is required"), http.StatusBadRequest)
		return
	}

	folder := &db.Folder{Label: strings.TrimSpace(req.Label), Icon: req.Icon}
	if err := s.store.CreateFolder(r.Context(), folder); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, folder)
}

// updateFolderHandler renames a folder or changes its icon
func (s *Server) updateFolderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Label string `json:"label"`
		Icon  string `json:"icon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Label) == "" {
		RenderError(w, r, errors.New("label is required"), http.StatusBadRequest)
		return
	}

	folder := &db.Folder{ID: id, Label: strings.TrimSpace(req.Label), Icon: req.Icon}
	if err := s.store.UpdateFolder(r.Context(), folder); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, folder)
}

// deleteFolderHandler removes a folder, its feeds fall back to the default one
func (s *Server) deleteFolderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteFolder(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// listKeywordsHandler returns all filter keywords
func (s *Server) listKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	keywords, err := s.store.GetFilterKeywords(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, keywords)
}

// createKeywordHandler adds a filter keyword suppressing matching items at ingestion
func (s *Server) createKeywordHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Keyword string `json:"keyword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Keyword) == "" {
		RenderError(w, r, errors.New("keyword is required"), http.StatusBadRequest)
		return
	}

	keyword, err := s.store.CreateFilterKeyword(r.Context(), req.Keyword)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKeyword) {
			RenderError(w, r, err, http.StatusBadRequest)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, keyword)
}

// deleteKeywordHandler removes a filter keyword
func (s *Server) deleteKeywordHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteFilterKeyword(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
