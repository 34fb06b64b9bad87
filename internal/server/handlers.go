package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tunedex/internal/catalog"
	"github.com/desertthunder/tunedex/internal/models"
	"github.com/desertthunder/tunedex/internal/shared"
)

const maxBodyBytes = 1 << 20

var _ Handler = (*CatalogHandler)(nil)

// CatalogHandler serves the catalog store operations as JSON endpoints.
type CatalogHandler struct {
	store  *catalog.Store
	logger *log.Logger
}

// NewCatalogHandler creates a handler backed by store.
func NewCatalogHandler(store *catalog.Store, logger *log.Logger) *CatalogHandler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CatalogHandler{store: store, logger: logger}
}

// Routes returns the method patterns this handler serves.
func (h *CatalogHandler) Routes() map[string]http.Handler {
	return map[string]http.Handler{
		"POST /users":              http.HandlerFunc(h.createUser),
		"POST /artists":            http.HandlerFunc(h.createArtist),
		"POST /albums":             http.HandlerFunc(h.createAlbum),
		"POST /songs":              http.HandlerFunc(h.createSong),
		"POST /playlists/length":   http.HandlerFunc(h.createPlaylistOnLength),
		"POST /playlists/names":    http.HandlerFunc(h.createPlaylistOnName),
		"PUT /playlists/listeners": http.HandlerFunc(h.findPlaylist),
		"PUT /songs/likes":         http.HandlerFunc(h.likeSong),
		"GET /artists/popular":     http.HandlerFunc(h.popularArtist),
		"GET /songs/popular":       http.HandlerFunc(h.popularSong),
		"GET /catalog":             http.HandlerFunc(h.snapshot),
		"GET /health":              http.HandlerFunc(h.health),
	}
}

func (h *CatalogHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.CreateUser(req.Name, req.Mobile))
}

func (h *CatalogHandler) createArtist(w http.ResponseWriter, r *http.Request) {
	var req models.ArtistRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.CreateArtist(req.Name))
}

func (h *CatalogHandler) createAlbum(w http.ResponseWriter, r *http.Request) {
	var req models.AlbumRequest
	if !decode(w, r, &req) {
		return
	}
	album, err := h.store.CreateAlbum(req.Title, req.Artist)
	h.respond(w, http.StatusCreated, album, err)
}

func (h *CatalogHandler) createSong(w http.ResponseWriter, r *http.Request) {
	var req models.SongRequest
	if !decode(w, r, &req) {
		return
	}
	song, err := h.store.CreateSong(req.Title, req.Album, req.Length)
	h.respond(w, http.StatusCreated, song, err)
}

func (h *CatalogHandler) createPlaylistOnLength(w http.ResponseWriter, r *http.Request) {
	var req models.PlaylistRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.store.CreatePlaylistOnLength(req.Mobile, req.Title, req.Length)
	h.respond(w, http.StatusCreated, p, err)
}

func (h *CatalogHandler) createPlaylistOnName(w http.ResponseWriter, r *http.Request) {
	var req models.PlaylistRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.store.CreatePlaylistOnName(req.Mobile, req.Title, req.Songs)
	h.respond(w, http.StatusCreated, p, err)
}

func (h *CatalogHandler) findPlaylist(w http.ResponseWriter, r *http.Request) {
	var req models.MembershipRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.store.FindPlaylist(req.Mobile, req.Title)
	h.respond(w, http.StatusOK, p, err)
}

func (h *CatalogHandler) likeSong(w http.ResponseWriter, r *http.Request) {
	var req models.MembershipRequest
	if !decode(w, r, &req) {
		return
	}
	song, err := h.store.LikeSong(req.Mobile, req.Title)
	h.respond(w, http.StatusOK, song, err)
}

func (h *CatalogHandler) popularArtist(w http.ResponseWriter, _ *http.Request) {
	name, ok := h.store.MostPopularArtist()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: no artist has been liked", catalog.ErrArtistNotFound))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (h *CatalogHandler) popularSong(w http.ResponseWriter, _ *http.Request) {
	title, ok := h.store.MostPopularSong()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: no song has been liked", catalog.ErrSongNotFound))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"title": title})
}

func (h *CatalogHandler) snapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

func (h *CatalogHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respond writes v with status, or the mapped error response when err is set.
func (h *CatalogHandler) respond(w http.ResponseWriter, status int, v any, err error) {
	if err != nil {
		code := StatusFor(err)
		if code == http.StatusInternalServerError {
			h.logger.Error("store operation failed", "error", err)
		}
		writeError(w, code, err)
		return
	}
	writeJSON(w, status, v)
}

// StatusFor maps a store or validation error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case catalog.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrDuplicateTitle):
		return http.StatusConflict
	case errors.Is(err, shared.ErrMissingArgument),
		errors.Is(err, shared.ErrInvalidInput),
		errors.Is(err, shared.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON body into req and validates it. On failure the 400 response is already written.
func decode(w http.ResponseWriter, r *http.Request, req models.Validator) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: malformed body: %v", shared.ErrInvalidInput, err))
		return false
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
