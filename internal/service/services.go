package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/store"
	"github.com/MKhiriev/go-photo-albums/models"
)

// Services groups the services of one running application.
type Services struct {
	Dataset DatasetService
	Gallery GalleryService
	AppInfo AppInfoService
}

// NewServices seeds importer from seed when both are set and the store is
// empty, loads the dataset from repo once and opens a gallery session on
// it.
func NewServices(ctx context.Context, repo store.DatasetRepository, importer store.DatasetImporter, seed store.DatasetRepository, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	datasetService := NewDatasetService(repo, importer, logger)

	if importer != nil && seed != nil {
		if err := datasetService.SeedFrom(ctx, seed); err != nil {
			return nil, fmt.Errorf("error seeding dataset: %w", err)
		}
	}

	dataset, err := datasetService.Load(ctx)
	if err != nil {
		return nil, err
	}

	gallery := NewGalleryLoggingWrapper(logger).Wrap(NewGallerySession(dataset, logger))

	return &Services{
		Dataset: datasetService,
		Gallery: gallery,
		AppInfo: NewAppInfoService(buildInfo),
	}, nil
}
