package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/utils"
	"github.com/MKhiriev/go-photo-albums/models"
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	users := h.gallery.Users()
	h.mu.Unlock()

	if users == nil {
		users = []models.User{}
	}
	if _, err := utils.WriteJSON(w, users, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getUsers").Msg("error writing users response")
	}
}

func (h *Handler) getAlbums(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	albums := h.gallery.Albums()
	h.mu.Unlock()

	if albums == nil {
		albums = []models.Album{}
	}
	if _, err := utils.WriteJSON(w, albums, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAlbums").Msg("error writing albums response")
	}
}
