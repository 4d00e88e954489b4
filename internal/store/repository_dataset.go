// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/models"
)

// SQLDatasetRepository reads and seeds the gallery tables of a SQL store.
// It implements both [DatasetRepository] and [DatasetImporter].
//
// Rows are returned ordered by the position captured at import time, so the
// order of the imported slices is the order callers read back.
type SQLDatasetRepository struct {
	*DB
	logger *logger.Logger
}

// NewSQLDatasetRepository constructs a [SQLDatasetRepository] on db.
func NewSQLDatasetRepository(db *DB, logger *logger.Logger) *SQLDatasetRepository {
	return &SQLDatasetRepository{
		DB:     db,
		logger: logger,
	}
}

// GetUsers returns every stored user.
func (r *SQLDatasetRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := queryAll(ctx, r.DB, buildSelectUsersQuery, func(rows *sql.Rows) (models.User, error) {
		var u models.User
		err := rows.Scan(&u.ID, &u.Name, &u.Sex)
		return u, err
	})
	if err != nil {
		r.logger.Err(err).Str("func", "SQLDatasetRepository.GetUsers").Msg("failed to read users")
		return nil, err
	}
	return users, nil
}

// GetAlbums returns every stored album.
func (r *SQLDatasetRepository) GetAlbums(ctx context.Context) ([]models.Album, error) {
	albums, err := queryAll(ctx, r.DB, buildSelectAlbumsQuery, func(rows *sql.Rows) (models.Album, error) {
		var a models.Album
		err := rows.Scan(&a.ID, &a.UserID, &a.Title)
		return a, err
	})
	if err != nil {
		r.logger.Err(err).Str("func", "SQLDatasetRepository.GetAlbums").Msg("failed to read albums")
		return nil, err
	}
	return albums, nil
}

// GetPhotos returns every stored photo.
func (r *SQLDatasetRepository) GetPhotos(ctx context.Context) ([]models.Photo, error) {
	photos, err := queryAll(ctx, r.DB, buildSelectPhotosQuery, func(rows *sql.Rows) (models.Photo, error) {
		var p models.Photo
		err := rows.Scan(&p.ID, &p.AlbumID, &p.Title, &p.URL)
		return p, err
	})
	if err != nil {
		r.logger.Err(err).Str("func", "SQLDatasetRepository.GetPhotos").Msg("failed to read photos")
		return nil, err
	}
	return photos, nil
}

// IsEmpty reports whether all three tables are empty.
func (r *SQLDatasetRepository) IsEmpty(ctx context.Context) (bool, error) {
	query, args, err := buildCountRecordsQuery(r.builder)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = r.retry(ctx, func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		r.logger.Err(err).Str("func", "SQLDatasetRepository.IsEmpty").Msg("failed to count records")
		return false, r.wrapError(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return count == 0, nil
}

// SaveDataset inserts users, albums and photos in a single transaction.
// Rows whose primary key already exists are left untouched.
func (r *SQLDatasetRepository) SaveDataset(ctx context.Context, dataset models.Dataset) error {
	err := r.retry(ctx, func(ctx context.Context) error {
		return r.saveDataset(ctx, dataset)
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "SQLDatasetRepository.SaveDataset").
			Int("users", len(dataset.Users)).
			Int("albums", len(dataset.Albums)).
			Int("photos", len(dataset.Photos)).
			Msg("failed to save dataset")
		return r.wrapError(err)
	}

	r.logger.Info().
		Int("users", len(dataset.Users)).
		Int("albums", len(dataset.Albums)).
		Int("photos", len(dataset.Photos)).
		Msg("dataset saved")
	return nil
}

func (r *SQLDatasetRepository) saveDataset(ctx context.Context, dataset models.Dataset) error {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, c := range chunks(len(dataset.Users)) {
		if err = execInsert(ctx, tx, r.builder, c[0], dataset.Users[c[0]:c[1]], buildInsertUsersQuery); err != nil {
			return err
		}
	}
	for _, c := range chunks(len(dataset.Albums)) {
		if err = execInsert(ctx, tx, r.builder, c[0], dataset.Albums[c[0]:c[1]], buildInsertAlbumsQuery); err != nil {
			return err
		}
	}
	for _, c := range chunks(len(dataset.Photos)) {
		if err = execInsert(ctx, tx, r.builder, c[0], dataset.Photos[c[0]:c[1]], buildInsertPhotosQuery); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func execInsert[T any](
	ctx context.Context,
	tx *sql.Tx,
	b sq.StatementBuilderType,
	start int,
	rows []T,
	build func(sq.StatementBuilderType, int, []T) (string, []any, error),
) error {
	query, args, err := build(b, start, rows)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// queryAll runs the query produced by build and scans every row with scan.
// The whole read is retried on retryable errors.
func queryAll[T any](
	ctx context.Context,
	db *DB,
	build func(sq.StatementBuilderType) (string, []any, error),
	scan func(*sql.Rows) (T, error),
) ([]T, error) {
	query, args, err := build(db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result []T
	err = db.retry(ctx, func(ctx context.Context) error {
		result = make([]T, 0, 64)

		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			item, scanErr := scan(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			result = append(result, item)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		return nil, db.wrapError(err)
	}

	return result, nil
}
