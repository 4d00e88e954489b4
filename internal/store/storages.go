// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/go-photo-albums/internal/config"
	"github.com/MKhiriev/go-photo-albums/internal/logger"
)

// Storages groups the local dataset sources chosen from configuration.
type Storages struct {
	// Dataset is the repository the gallery is loaded from.
	Dataset DatasetRepository
	// Importer is non-nil only for a SQL store.
	Importer DatasetImporter
	// Seed fills an empty SQL store. It reads the dataset directory, or the
	// embedded sample when no directory is configured.
	Seed DatasetRepository

	db *DB
}

// NewStorages initialises the dataset sources:
//  1. With a DSN it opens PostgreSQL ("postgres://" or "postgresql://") or
//     SQLite (anything else), runs migrations and exposes a
//     [SQLDatasetRepository] as both Dataset and Importer.
//  2. Without a DSN, Dataset reads JSON files from cfg.DatasetDir, or the
//     embedded sample when the directory is empty.
func NewStorages(ctx context.Context, cfg config.Source, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	files := NewFSDatasetRepository(datasetFS(cfg.DatasetDir), log)

	if cfg.DSN == "" {
		return &Storages{Dataset: files}, nil
	}

	db, err := connect(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	repo := NewSQLDatasetRepository(db, log)

	return &Storages{
		Dataset:  repo,
		Importer: repo,
		Seed:     files,
		db:       db,
	}, nil
}

// Close releases the SQL connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(dsn) {
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	}

	if strings.Contains(dsn, "://") {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}

	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	return db, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func datasetFS(dir string) fs.FS {
	if dir == "" {
		return EmbeddedDataset()
	}
	return os.DirFS(dir)
}
