package service

import (
	"context"

	"github.com/MKhiriev/go-photo-albums/internal/store"
	"github.com/MKhiriev/go-photo-albums/models"
)

// GalleryService is the view-model controller of one gallery session. It
// owns the working photo list and the filter criteria, and exposes them
// only through the operations below. Every mutator returns the recomputed
// visible set.
//
// Implementations are not safe for concurrent use.
type GalleryService interface {
	VisiblePhotos() []models.EnrichedPhoto
	FilterCriteria() models.FilterCriteria
	Photos() []models.EnrichedPhoto
	Users() []models.User
	Albums() []models.Album

	SetSelectedUser(name string) []models.EnrichedPhoto
	SetSearchQuery(query string) []models.EnrichedPhoto
	ToggleAlbum(albumID int64) []models.EnrichedPhoto
	ClearAlbumSelection() []models.EnrichedPhoto
	ResetAllFilters() []models.EnrichedPhoto
	ReorderPhoto(photoID int64, direction models.MoveDirection) ([]models.EnrichedPhoto, error)
}

// DatasetService loads the source tables and seeds writable stores.
type DatasetService interface {
	// Load reads users, albums and photos from the configured repository.
	Load(ctx context.Context) (models.Dataset, error)
	// SeedFrom imports everything src holds when the writable store is
	// empty. src is not read otherwise.
	SeedFrom(ctx context.Context, src store.DatasetRepository) error
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// GalleryServiceWrapper decorates a GalleryService with additional
// behaviour such as logging.
type GalleryServiceWrapper interface {
	Wrap(GalleryService) GalleryService
}
