package store

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/models"
)

// File names of the three dataset tables inside a dataset directory.
const (
	UsersFile  = "users.json"
	AlbumsFile = "albums.json"
	PhotosFile = "photos.json"
)

//go:embed seed/*.json
var seedFS embed.FS

// EmbeddedDataset returns the sample dataset compiled into the binary.
func EmbeddedDataset() fs.FS {
	sub, err := fs.Sub(seedFS, "seed")
	if err != nil {
		// "seed" is a valid path and is always embedded.
		panic(err)
	}
	return sub
}

// FSDatasetRepository is a read-only [DatasetRepository] decoding JSON
// arrays from users.json, albums.json and photos.json of a file system.
// Every call re-reads its file.
type FSDatasetRepository struct {
	fsys   fs.FS
	logger *logger.Logger
}

// NewFSDatasetRepository constructs a [FSDatasetRepository] over fsys, for
// example os.DirFS(dir) or [EmbeddedDataset].
func NewFSDatasetRepository(fsys fs.FS, logger *logger.Logger) *FSDatasetRepository {
	return &FSDatasetRepository{
		fsys:   fsys,
		logger: logger,
	}
}

// GetUsers decodes users.json.
func (f *FSDatasetRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	return readJSON[models.User](ctx, f, UsersFile)
}

// GetAlbums decodes albums.json.
func (f *FSDatasetRepository) GetAlbums(ctx context.Context) ([]models.Album, error) {
	return readJSON[models.Album](ctx, f, AlbumsFile)
}

// GetPhotos decodes photos.json.
func (f *FSDatasetRepository) GetPhotos(ctx context.Context) ([]models.Photo, error) {
	return readJSON[models.Photo](ctx, f, PhotosFile)
}

func readJSON[T any](ctx context.Context, f *FSDatasetRepository, name string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := f.fsys.Open(name)
	if err != nil {
		f.logger.Err(err).Str("func", "FSDatasetRepository.readJSON").Str("file", name).Msg("failed to open dataset file")
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetFileNotFound, name)
		}
		return nil, fmt.Errorf("error opening %s: %w", name, err)
	}
	defer file.Close()

	records := make([]T, 0)
	if err = json.NewDecoder(file).Decode(&records); err != nil {
		f.logger.Err(err).Str("func", "FSDatasetRepository.readJSON").Str("file", name).Msg("failed to decode dataset file")
		return nil, fmt.Errorf("%w %s: %w", ErrDecodingDataset, name, err)
	}

	f.logger.Debug().Str("file", name).Int("records", len(records)).Msg("dataset file read")
	return records, nil
}
