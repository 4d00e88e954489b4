package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/utils"
	"github.com/MKhiriev/go-photo-albums/internal/validators"
	"github.com/MKhiriev/go-photo-albums/models"
)

func (h *Handler) getVisiblePhotos(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.writePhotos(w, r, "*Handler.getVisiblePhotos", h.gallery.VisiblePhotos())
}

func (h *Handler) getAllPhotos(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.writePhotos(w, r, "*Handler.getAllPhotos", h.gallery.Photos())
}

func (h *Handler) movePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := int64URLParam(r, "photoID")
	if err != nil {
		writeError(w, r, "*Handler.movePhoto", err)
		return
	}

	var req models.MoveRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.movePhoto", fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}
	if err = h.validator.Validate(r.Context(), req, validators.FieldDirection); err != nil {
		writeError(w, r, "*Handler.movePhoto", err)
		return
	}

	direction, err := models.ParseMoveDirection(req.Direction)
	if err != nil {
		writeError(w, r, "*Handler.movePhoto", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	visible, err := h.gallery.ReorderPhoto(photoID, direction)
	if err != nil {
		writeError(w, r, "*Handler.movePhoto", err)
		return
	}

	h.writePhotos(w, r, "*Handler.movePhoto", visible)
}

// writePhotos answers with photos and the current criteria. The caller
// holds h.mu.
func (h *Handler) writePhotos(w http.ResponseWriter, r *http.Request, funcName string, photos []models.EnrichedPhoto) {
	resp := models.NewPhotosResponse(photos, h.gallery.FilterCriteria())
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing photos response")
	}
}

func int64URLParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}
