package hub

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
)

const mediaPrefix = "/media/"

// mediaTypes lists the file extensions the media endpoint will serve.
var mediaTypes = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".bmp":  true,
	".avif": true,
}

// RegisterRoutes mounts the viewer routes onto the given router.
func (h *Hub) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handlePage)
	r.Get(mediaPrefix+"*", h.handleMedia)
	r.Get("/api/decks", h.handleDecks)
	if h.reloader != nil {
		r.Get("/ws/reload", h.reloader.ServeHTTP)
	}
}

func (h *Hub) handlePage(w http.ResponseWriter, r *http.Request) {
	page := h.View(r.URL.Query())

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, page); err != nil {
		h.logger.Error("rendering page", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleMedia serves slide images addressed by repository-relative path.
func (h *Hub) handleMedia(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, mediaPrefix)
	if !mediaTypes[strings.ToLower(path.Ext(rel))] {
		http.NotFound(w, r)
		return
	}

	p, err := h.resolver.Resolve(rel)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	f, err := os.Open(p)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// deckSummary is one entry of the /api/decks response.
type deckSummary struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Link       string `json:"link"`
	PublicLink string `json:"public_link,omitempty"`
}

// decksResponse is the JSON response for /api/decks.
type decksResponse struct {
	Decks []deckSummary `json:"decks"`
}

func (h *Hub) handleDecks(w http.ResponseWriter, r *http.Request) {
	refs, err := h.Decks()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "deck discovery failed"})
		h.logger.Error("deck discovery failed", "err", err)
		return
	}

	resp := decksResponse{Decks: []deckSummary{}}
	for _, ref := range refs {
		link, public, err := h.DeepLink(ref)
		if err != nil {
			continue
		}
		rel, _ := h.resolver.Rel(ref.Path)
		resp.Decks = append(resp.Decks, deckSummary{
			Name:       ref.Name,
			Path:       rel,
			Link:       link,
			PublicLink: public,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
