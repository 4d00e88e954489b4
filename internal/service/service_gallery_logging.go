package service

import (
	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/models"
)

type galleryLoggingService struct {
	inner  GalleryService
	logger *logger.Logger
}

type galleryLoggingWrapper struct {
	logger *logger.Logger
}

// NewGalleryLoggingWrapper returns a wrapper that logs every mutation of
// the wrapped session at debug level and failed reorders as warnings.
func NewGalleryLoggingWrapper(logger *logger.Logger) GalleryServiceWrapper {
	return &galleryLoggingWrapper{logger: logger}
}

func (w *galleryLoggingWrapper) Wrap(inner GalleryService) GalleryService {
	return &galleryLoggingService{inner: inner, logger: w.logger}
}

func (g *galleryLoggingService) VisiblePhotos() []models.EnrichedPhoto {
	return g.inner.VisiblePhotos()
}

func (g *galleryLoggingService) FilterCriteria() models.FilterCriteria {
	return g.inner.FilterCriteria()
}

func (g *galleryLoggingService) Photos() []models.EnrichedPhoto {
	return g.inner.Photos()
}

func (g *galleryLoggingService) Users() []models.User {
	return g.inner.Users()
}

func (g *galleryLoggingService) Albums() []models.Album {
	return g.inner.Albums()
}

func (g *galleryLoggingService) SetSelectedUser(name string) []models.EnrichedPhoto {
	visible := g.inner.SetSelectedUser(name)
	g.logMutation("SetSelectedUser", visible)
	return visible
}

func (g *galleryLoggingService) SetSearchQuery(query string) []models.EnrichedPhoto {
	visible := g.inner.SetSearchQuery(query)
	g.logMutation("SetSearchQuery", visible)
	return visible
}

func (g *galleryLoggingService) ToggleAlbum(albumID int64) []models.EnrichedPhoto {
	visible := g.inner.ToggleAlbum(albumID)
	g.logMutation("ToggleAlbum", visible)
	return visible
}

func (g *galleryLoggingService) ClearAlbumSelection() []models.EnrichedPhoto {
	visible := g.inner.ClearAlbumSelection()
	g.logMutation("ClearAlbumSelection", visible)
	return visible
}

func (g *galleryLoggingService) ResetAllFilters() []models.EnrichedPhoto {
	visible := g.inner.ResetAllFilters()
	g.logMutation("ResetAllFilters", visible)
	return visible
}

func (g *galleryLoggingService) ReorderPhoto(photoID int64, direction models.MoveDirection) ([]models.EnrichedPhoto, error) {
	visible, err := g.inner.ReorderPhoto(photoID, direction)
	if err != nil {
		g.logger.Warn().Err(err).
			Str("op", "ReorderPhoto").
			Int64("photo_id", photoID).
			Str("direction", string(direction)).
			Msg("reorder rejected")
		return nil, err
	}
	g.logMutation("ReorderPhoto", visible)
	return visible, nil
}

func (g *galleryLoggingService) logMutation(op string, visible []models.EnrichedPhoto) {
	criteria := g.inner.FilterCriteria()
	g.logger.Debug().
		Str("op", op).
		Str("user", criteria.SelectedUserName).
		Str("query", criteria.SearchQuery).
		Ints64("albums", criteria.SelectedAlbumIDs).
		Int("visible", len(visible)).
		Msg("gallery updated")
}
