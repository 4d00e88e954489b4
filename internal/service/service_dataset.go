package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/store"
	"github.com/MKhiriev/go-photo-albums/models"
)

type datasetService struct {
	repository store.DatasetRepository
	importer   store.DatasetImporter

	logger *logger.Logger
}

// NewDatasetService returns a DatasetService reading from repository.
// importer may be nil for read-only sources, in which case SeedFrom returns
// ErrImportNotSupported.
func NewDatasetService(repository store.DatasetRepository, importer store.DatasetImporter, logger *logger.Logger) DatasetService {
	return &datasetService{
		repository: repository,
		importer:   importer,
		logger:     logger,
	}
}

func (d *datasetService) Load(ctx context.Context) (models.Dataset, error) {
	dataset, err := loadDataset(ctx, d.repository)
	if err != nil {
		d.logger.Err(err).Str("func", "datasetService.Load").Msg("failed to load dataset")
		return models.Dataset{}, err
	}

	d.logger.Info().
		Int("users", len(dataset.Users)).
		Int("albums", len(dataset.Albums)).
		Int("photos", len(dataset.Photos)).
		Msg("dataset loaded")
	return dataset, nil
}

func (d *datasetService) SeedFrom(ctx context.Context, src store.DatasetRepository) error {
	empty, err := d.storeIsEmpty(ctx)
	if err != nil || !empty {
		return err
	}

	dataset, err := loadDataset(ctx, src)
	if err != nil {
		d.logger.Err(err).Str("func", "datasetService.SeedFrom").Msg("failed to read seed dataset")
		return fmt.Errorf("%w: %w", ErrImportingDataset, err)
	}

	if err = d.importer.SaveDataset(ctx, dataset); err != nil {
		d.logger.Err(err).Str("func", "datasetService.SeedFrom").Msg("failed to import seed dataset")
		return fmt.Errorf("%w: %w", ErrImportingDataset, err)
	}
	return nil
}

// storeIsEmpty reports whether seeding should run.
func (d *datasetService) storeIsEmpty(ctx context.Context) (bool, error) {
	if d.importer == nil {
		return false, ErrImportNotSupported
	}

	empty, err := d.importer.IsEmpty(ctx)
	if err != nil {
		d.logger.Err(err).Str("func", "datasetService.storeIsEmpty").Msg("failed to check dataset store")
		return false, fmt.Errorf("%w: %w", ErrImportingDataset, err)
	}
	if !empty {
		d.logger.Debug().Msg("dataset store already populated, import skipped")
	}
	return empty, nil
}

func loadDataset(ctx context.Context, repo store.DatasetRepository) (models.Dataset, error) {
	users, err := repo.GetUsers(ctx)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: users: %w", ErrLoadingDataset, err)
	}

	albums, err := repo.GetAlbums(ctx)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: albums: %w", ErrLoadingDataset, err)
	}

	photos, err := repo.GetPhotos(ctx)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: photos: %w", ErrLoadingDataset, err)
	}

	return models.Dataset{Users: users, Albums: albums, Photos: photos}, nil
}
