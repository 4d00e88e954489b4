package store

import (
	"context"

	"github.com/MKhiriev/go-photo-albums/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DatasetRepository reads the three source tables of the gallery.
// Implementations return records in source order.
type DatasetRepository interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetAlbums(ctx context.Context) ([]models.Album, error)
	GetPhotos(ctx context.Context) ([]models.Photo, error)
}

// DatasetImporter seeds a writable store with a complete dataset.
type DatasetImporter interface {
	// IsEmpty reports whether the store holds no users, albums or photos.
	IsEmpty(ctx context.Context) (bool, error)
	// SaveDataset stores all three tables atomically. Records whose id
	// already exists are skipped.
	SaveDataset(ctx context.Context, dataset models.Dataset) error
}

// ErrorClassificator decides how a failed database operation is handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
