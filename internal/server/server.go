// Package server is the upload-shaped HTTP boundary: it accepts ledger CSV
// uploads, applies them through the tracker, and exposes read-only directory
// queries. All policy lives below it.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/putr/putr/internal/ledger"
	"github.com/putr/putr/internal/tracker"
)

// Server handles the HTTP API.
type Server struct {
	Tracker *tracker.Tracker
}

// Router builds the chi router for the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/players", s.handlePlayers)
	r.Get("/api/player", s.handlePlayer)
	r.Post("/api/upload-csv", s.handleUpload)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	dir, err := s.Tracker.Store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("load directory: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, dir)
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing name parameter")
		return
	}
	dir, err := s.Tracker.Store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("load directory: %v", err))
		return
	}
	if p, ok := dir[name]; ok {
		writeJSON(w, http.StatusOK, p)
		return
	}
	// Fall back to nickname resolution.
	if id, ok := dir.Resolve(name); ok {
		writeJSON(w, http.StatusOK, dir[id])
		return
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("player %q not found", name))
}

// handleUpload accepts a multipart ledger CSV, stores it in a temp dir under
// its original filename (the session key lives there), applies the session
// and discards the payload regardless of outcome.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if filename == "" || filename == "." {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}
	if !strings.HasSuffix(filename, ".csv") {
		writeError(w, http.StatusBadRequest, "File must be a CSV")
		return
	}

	tempDir, err := os.MkdirTemp("", "putr-upload")
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("temp dir: %v", err))
		return
	}
	defer os.RemoveAll(tempDir)

	tempPath := filepath.Join(tempDir, filename)
	dst, err := os.Create(tempPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("save upload: %v", err))
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("save upload: %v", err))
		return
	}
	dst.Close()

	rep, err := s.Tracker.AddSessionFile(tempPath, nil)
	switch {
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, ledger.ErrFormat):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("process game: %v", err))
		return
	}

	if !rep.Applied {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":    false,
			"message":    "Not all players known",
			"unresolved": rep.Unresolved,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Game added successfully",
		"session": rep.Key,
		"result":  rep.Result,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
