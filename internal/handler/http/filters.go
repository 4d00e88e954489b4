package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/utils"
	"github.com/MKhiriev/go-photo-albums/models"
)

func (h *Handler) getFilters(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	criteria := h.gallery.FilterCriteria()
	h.mu.Unlock()

	if _, err := utils.WriteJSON(w, criteria, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getFilters").Msg("error writing filters response")
	}
}

func (h *Handler) selectUser(w http.ResponseWriter, r *http.Request) {
	var req models.SelectUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.selectUser", fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, "*Handler.selectUser", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.writePhotos(w, r, "*Handler.selectUser", h.gallery.SetSelectedUser(req.Name))
}

func (h *Handler) setSearchQuery(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.setSearchQuery", fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, "*Handler.setSearchQuery", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.writePhotos(w, r, "*Handler.setSearchQuery", h.gallery.SetSearchQuery(req.Query))
}

func (h *Handler) toggleAlbum(w http.ResponseWriter, r *http.Request) {
	albumID, err := int64URLParam(r, "albumID")
	if err != nil {
		writeError(w, r, "*Handler.toggleAlbum", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.writePhotos(w, r, "*Handler.toggleAlbum", h.gallery.ToggleAlbum(albumID))
}

func (h *Handler) clearAlbums(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.writePhotos(w, r, "*Handler.clearAlbums", h.gallery.ClearAlbumSelection())
}

func (h *Handler) resetFilters(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.writePhotos(w, r, "*Handler.resetFilters", h.gallery.ResetAllFilters())
}
