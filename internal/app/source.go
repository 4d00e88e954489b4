package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-albums/internal/adapter"
	"github.com/MKhiriev/go-photo-albums/internal/config"
	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/store"
)

// NewDatasetSource picks the dataset source described by cfg:
//  1. the remote API when cfg.RemoteAddress is set (read-only);
//  2. otherwise the local storages, see [store.NewStorages].
//
// The caller closes the returned Storages.
func NewDatasetSource(ctx context.Context, cfg config.Source, log *logger.Logger) (*store.Storages, error) {
	if cfg.RemoteAddress != "" {
		remote, err := adapter.NewHTTPDatasetAdapter(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("error creating remote dataset adapter: %w", err)
		}
		log.Info().Str("address", cfg.RemoteAddress).Msg("using remote dataset source")
		return &store.Storages{Dataset: remote}, nil
	}

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}
	return storages, nil
}
